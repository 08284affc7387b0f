package gateway

import (
	"context"
	"log/slog"

	"github.com/templui/aura/internal/model"
)

func (g *Gateway) MoodCounts(ctx context.Context) []model.MoodCount {
	var counts []model.MoodCount
	err := g.do(ctx, func() (err error) {
		counts, err = g.analytics.MoodCounts(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to fetch mood counts", "error", err)
		return []model.MoodCount{}
	}
	return nonNil(counts)
}

func (g *Gateway) MoodTrends(ctx context.Context, since string) []model.MoodTrend {
	var trends []model.MoodTrend
	err := g.do(ctx, func() (err error) {
		trends, err = g.analytics.MoodTrends(ctx, since)
		return err
	})
	if err != nil {
		slog.Error("failed to fetch mood trends", "error", err)
		return []model.MoodTrend{}
	}
	return nonNil(trends)
}

func (g *Gateway) MoodTotal(ctx context.Context) int {
	var total int
	err := g.do(ctx, func() (err error) {
		total, err = g.analytics.MoodTotal(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to count moods", "error", err)
		return 0
	}
	return total
}

func (g *Gateway) GoalProgress(ctx context.Context) []model.GoalProgress {
	var progress []model.GoalProgress
	err := g.do(ctx, func() (err error) {
		progress, err = g.analytics.GoalProgress(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to fetch goal progress", "error", err)
		return []model.GoalProgress{}
	}
	return nonNil(progress)
}

func (g *Gateway) ProgressTrends(ctx context.Context, since string) []model.ProgressTrend {
	var trends []model.ProgressTrend
	err := g.do(ctx, func() (err error) {
		trends, err = g.analytics.ProgressTrends(ctx, since)
		return err
	})
	if err != nil {
		slog.Error("failed to fetch progress trends", "error", err)
		return []model.ProgressTrend{}
	}
	return nonNil(trends)
}

func (g *Gateway) ProgressTotal(ctx context.Context) int {
	var total int
	err := g.do(ctx, func() (err error) {
		total, err = g.analytics.ProgressTotal(ctx)
		return err
	})
	if err != nil {
		slog.Error("failed to count progress entries", "error", err)
		return 0
	}
	return total
}
