package service

import (
	"context"

	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
)

// trendWindowDays bounds the trend series shown on the dashboard.
const trendWindowDays = 30

type AnalyticsService struct {
	store *gateway.Gateway
}

func NewAnalyticsService(store *gateway.Gateway) *AnalyticsService {
	return &AnalyticsService{store: store}
}

func (s *AnalyticsService) since() string {
	return model.Timestamp(s.store.Now().AddDate(0, 0, -trendWindowDays))
}

// MoodAnalytics counts moods by type, excluding the "general" and "other"
// sentinels, plus daily trends for the last 30 days. TotalEntries counts
// every mood row.
func (s *AnalyticsService) MoodAnalytics(ctx context.Context) model.MoodAnalytics {
	return model.MoodAnalytics{
		MoodCounts:   s.store.MoodCounts(ctx),
		MoodTrends:   s.store.MoodTrends(ctx, s.since()),
		TotalEntries: s.store.MoodTotal(ctx),
	}
}

// GoalProgressAnalytics reports yes/no/maybe counts for every active goal,
// including goals never checked, plus daily trends for the last 30 days.
func (s *AnalyticsService) GoalProgressAnalytics(ctx context.Context) model.ProgressAnalytics {
	return model.ProgressAnalytics{
		GoalProgress:         s.store.GoalProgress(ctx),
		ProgressTrends:       s.store.ProgressTrends(ctx, s.since()),
		TotalProgressEntries: s.store.ProgressTotal(ctx),
	}
}
