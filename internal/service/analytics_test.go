package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/aura/internal/model"
)

func TestMoodAnalytics(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	empty := s.analytics.MoodAnalytics(ctx)
	assert.NotNil(t, empty.MoodCounts)
	assert.Empty(t, empty.MoodCounts)
	assert.Zero(t, empty.TotalEntries)

	s.moods.ClassifyMood(ctx, "so happy")
	s.moods.ClassifyMood(ctx, "happy again")
	s.moods.ClassifyMood(ctx, "sad now")
	s.moods.ClassifyMood(ctx, "I am fine")
	s.moods.LogGeneral(ctx, "walked the dog")

	a := s.analytics.MoodAnalytics(ctx)
	assert.Equal(t, 5, a.TotalEntries)
	assert.Equal(t, []model.MoodCount{{Mood: "happy", Count: 2}, {Mood: "sad", Count: 1}}, a.MoodCounts)

	require.NotEmpty(t, a.MoodTrends)
	for _, trend := range a.MoodTrends {
		assert.Equal(t, "2025-03-14", trend.Date)
		assert.NotEqual(t, "other", trend.Mood)
		assert.NotEqual(t, "general", trend.Mood)
	}
}

func TestGoalProgressAnalytics(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	s.goals.AddGoal(ctx, "I want to read")
	s.goals.AddGoal(ctx, "I want to run")
	goals := s.goals.Goals(ctx)
	require.Len(t, goals, 2)
	run, read := goals[0], goals[1]

	s.goals.RecordProgress(ctx, read.ID, model.ProgressYes)
	s.goals.RecordProgress(ctx, read.ID, model.ProgressYes)
	s.goals.RecordProgress(ctx, read.ID, model.ProgressNo)

	a := s.analytics.GoalProgressAnalytics(ctx)
	assert.Equal(t, 3, a.TotalProgressEntries)
	require.Len(t, a.GoalProgress, 2)

	assert.Equal(t, model.GoalProgress{GoalID: read.ID, GoalText: "Read", YesCount: 2, NoCount: 1, MaybeCount: 0, TotalChecks: 3}, a.GoalProgress[0])
	assert.Equal(t, model.GoalProgress{GoalID: run.ID, GoalText: "Run"}, a.GoalProgress[1])

	require.Len(t, a.ProgressTrends, 1)
	assert.Equal(t, model.ProgressTrend{Date: "2025-03-14", YesCount: 2, NoCount: 1}, a.ProgressTrends[0])
}
