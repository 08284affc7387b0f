package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/aura/internal/model"
)

func TestExportUpload(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	store := &memoryStorage{}
	exports := NewExportService(s.store, s.analytics, store)

	s.goals.AddGoal(ctx, "I want to read")
	s.moods.ClassifyMood(ctx, "happy")

	key, err := exports.Upload(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "exports/aura-2025-03-14T093000000000Z-"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	var snapshot model.Snapshot
	require.NoError(t, json.Unmarshal(store.objects[key], &snapshot))
	assert.Equal(t, "2025-03-14T09:30:00.000000Z", snapshot.GeneratedAt)
	require.Len(t, snapshot.Goals, 1)
	assert.Equal(t, "Read", snapshot.Goals[0].Text)
	assert.Equal(t, 1, snapshot.Moods.TotalEntries)
}

func TestExportWithoutStorage(t *testing.T) {
	s := newServices(t)
	exports := NewExportService(s.store, s.analytics, nil)

	_, err := exports.Upload(context.Background())
	assert.ErrorIs(t, err, ErrExportStorageDisabled)

	snapshot := exports.Snapshot(context.Background())
	assert.NotNil(t, snapshot.Goals)
}

func TestExportStorageFailure(t *testing.T) {
	s := newServices(t)
	exports := NewExportService(s.store, s.analytics, &memoryStorage{err: errors.New("bucket gone")})

	_, err := exports.Upload(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}
