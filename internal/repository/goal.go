package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	Active(ctx context.Context) ([]model.Goal, error)
	ActiveWithIDs(ctx context.Context) ([]model.Goal, error)
	ByID(ctx context.Context, goalID int64) (*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Create inserts goal and sets its ID.
func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (goal_text, date_added, status)
	          VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, goal.Text, goal.DateAdded, goal.Status).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// Active returns the text and date of active goals, newest first.
func (r *goalRepository) Active(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	query := `SELECT goal_text, date_added FROM goals
	          WHERE status = $1
	          ORDER BY date_added DESC, id DESC`

	err := r.db.SelectContext(ctx, &goals, query, model.GoalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) ActiveWithIDs(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	query := `SELECT id, goal_text, date_added, status FROM goals
	          WHERE status = $1
	          ORDER BY date_added DESC, id DESC`

	err := r.db.SelectContext(ctx, &goals, query, model.GoalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) ByID(ctx context.Context, goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT id, goal_text, date_added, status FROM goals WHERE id = $1`

	err := r.db.GetContext(ctx, goal, query, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}
