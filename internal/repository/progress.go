package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/model"
)

type ProgressRepository interface {
	Create(ctx context.Context, check *model.ProgressCheck) error
	ByGoal(ctx context.Context, goalID int64) ([]model.ProgressCheck, error)
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, check *model.ProgressCheck) error {
	query := `INSERT INTO progress (goal_id, status, created_at)
	          VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, check.GoalID, string(check.Status), check.CreatedAt).Scan(&check.ID)
	if err != nil {
		return fmt.Errorf("failed to create progress check: %w", err)
	}
	return nil
}

// ByGoal returns the progress history of a goal, oldest first.
func (r *progressRepository) ByGoal(ctx context.Context, goalID int64) ([]model.ProgressCheck, error) {
	var checks []model.ProgressCheck
	query := `SELECT id, goal_id, status, created_at FROM progress
	          WHERE goal_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &checks, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress checks: %w", err)
	}
	return checks, nil
}
