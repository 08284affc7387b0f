package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/model"
)

type MoodRepository interface {
	Create(ctx context.Context, entry *model.MoodEntry) error
	Recent(ctx context.Context, limit int) ([]model.MoodEntry, error)
}

type moodRepository struct {
	db *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	query := `INSERT INTO moods (mood, description, date_logged)
	          VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, entry.Mood, entry.Description, entry.DateLogged).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	return nil
}

func (r *moodRepository) Recent(ctx context.Context, limit int) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	query := `SELECT id, mood, description, date_logged FROM moods
	          ORDER BY date_logged DESC, id DESC LIMIT $1`

	err := r.db.SelectContext(ctx, &entries, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return entries, nil
}
