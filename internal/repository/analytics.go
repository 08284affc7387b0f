package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/model"
)

// AnalyticsRepository runs read-only aggregations. Dates are the first ten
// characters of the stored timestamp, which works on both SQLite and Postgres.
type AnalyticsRepository interface {
	MoodCounts(ctx context.Context) ([]model.MoodCount, error)
	MoodTrends(ctx context.Context, since string) ([]model.MoodTrend, error)
	MoodTotal(ctx context.Context) (int, error)
	GoalProgress(ctx context.Context) ([]model.GoalProgress, error)
	ProgressTrends(ctx context.Context, since string) ([]model.ProgressTrend, error)
	ProgressTotal(ctx context.Context) (int, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) MoodCounts(ctx context.Context) ([]model.MoodCount, error) {
	counts := []model.MoodCount{}
	query := `SELECT mood, COUNT(*) AS total
	          FROM moods
	          WHERE mood <> 'general' AND mood <> 'other'
	          GROUP BY mood
	          ORDER BY total DESC, mood ASC`

	err := r.db.SelectContext(ctx, &counts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count moods: %w", err)
	}
	return counts, nil
}

func (r *analyticsRepository) MoodTrends(ctx context.Context, since string) ([]model.MoodTrend, error) {
	trends := []model.MoodTrend{}
	query := `SELECT substr(date_logged, 1, 10) AS day, mood, COUNT(*) AS total
	          FROM moods
	          WHERE date_logged >= $1
	          AND mood <> 'general' AND mood <> 'other'
	          GROUP BY substr(date_logged, 1, 10), mood
	          ORDER BY day DESC, mood ASC`

	err := r.db.SelectContext(ctx, &trends, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood trends: %w", err)
	}
	return trends, nil
}

func (r *analyticsRepository) MoodTotal(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM moods`)
	if err != nil {
		return 0, fmt.Errorf("failed to count mood entries: %w", err)
	}
	return count, nil
}

func (r *analyticsRepository) GoalProgress(ctx context.Context) ([]model.GoalProgress, error) {
	progress := []model.GoalProgress{}
	query := `SELECT
	              g.id AS goal_id,
	              g.goal_text,
	              COALESCE(SUM(CASE WHEN p.status = 'yes' THEN 1 ELSE 0 END), 0) AS yes_count,
	              COALESCE(SUM(CASE WHEN p.status = 'no' THEN 1 ELSE 0 END), 0) AS no_count,
	              COALESCE(SUM(CASE WHEN p.status = 'maybe' THEN 1 ELSE 0 END), 0) AS maybe_count,
	              COUNT(p.id) AS total_checks
	          FROM goals g
	          LEFT JOIN progress p ON g.id = p.goal_id
	          WHERE g.status = $1
	          GROUP BY g.id, g.goal_text
	          ORDER BY total_checks DESC, g.id ASC`

	err := r.db.SelectContext(ctx, &progress, query, model.GoalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal progress: %w", err)
	}
	return progress, nil
}

func (r *analyticsRepository) ProgressTrends(ctx context.Context, since string) ([]model.ProgressTrend, error) {
	trends := []model.ProgressTrend{}
	query := `SELECT
	              substr(created_at, 1, 10) AS day,
	              COALESCE(SUM(CASE WHEN status = 'yes' THEN 1 ELSE 0 END), 0) AS yes_count,
	              COALESCE(SUM(CASE WHEN status = 'no' THEN 1 ELSE 0 END), 0) AS no_count
	          FROM progress
	          WHERE created_at >= $1
	          GROUP BY substr(created_at, 1, 10)
	          ORDER BY day DESC`

	err := r.db.SelectContext(ctx, &trends, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress trends: %w", err)
	}
	return trends, nil
}

func (r *analyticsRepository) ProgressTotal(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM progress`)
	if err != nil {
		return 0, fmt.Errorf("failed to count progress entries: %w", err)
	}
	return count, nil
}
