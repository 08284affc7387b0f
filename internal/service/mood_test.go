package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/aura/internal/classify"
)

func TestClassifyMood(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	tired := s.moods.ClassifyMood(ctx, "I'm so tired today")
	assert.Equal(t, "tired", tired.Mood)
	assert.Equal(t, classify.Response("tired"), tired.Response)
	assert.True(t, tired.Logged)

	fine := s.moods.ClassifyMood(ctx, "I am fine")
	assert.Equal(t, classify.MoodOther, fine.Mood)
	assert.Equal(t, classify.DefaultResponse, fine.Response)
	assert.True(t, fine.Logged)

	none := s.moods.ClassifyMood(ctx, "blue sky")
	assert.False(t, none.Detected())
	assert.False(t, none.Logged)

	recent := s.moods.Recent(ctx, 10)
	require.Len(t, recent, 2)
	moods := []string{recent[0].Mood, recent[1].Mood}
	assert.ElementsMatch(t, []string{"tired", classify.MoodOther}, moods)
}

func TestLogGeneral(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	assert.False(t, s.moods.LogGeneral(ctx, "   "))
	assert.True(t, s.moods.LogGeneral(ctx, "it was a day"))

	recent := s.moods.Recent(ctx, 10)
	require.Len(t, recent, 1)
	assert.Equal(t, classify.MoodGeneral, recent[0].Mood)
	assert.Equal(t, "it was a day", recent[0].Description)
}
