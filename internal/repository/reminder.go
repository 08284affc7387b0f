package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *model.Reminder) error
	Unread(ctx context.Context) ([]model.Reminder, error)
	MarkRead(ctx context.Context, reminderID int64) error
}

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	query := `INSERT INTO reminders (goal_id, message, created_at, is_read)
	          VALUES ($1, $2, $3, FALSE) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, reminder.GoalID, reminder.Message, reminder.CreatedAt).Scan(&reminder.ID)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	reminder.Read = false
	return nil
}

// Unread returns unread reminders with their goal text, oldest first.
func (r *reminderRepository) Unread(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	query := `SELECT r.id, r.goal_id, r.message, g.goal_text, r.created_at, r.is_read
	          FROM reminders r
	          JOIN goals g ON g.id = r.goal_id
	          WHERE r.is_read = FALSE
	          ORDER BY r.created_at ASC, r.id ASC`

	err := r.db.SelectContext(ctx, &reminders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// MarkRead sets the read flag. Marking an already read reminder is a no-op.
func (r *reminderRepository) MarkRead(ctx context.Context, reminderID int64) error {
	query := `UPDATE reminders SET is_read = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, reminderID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}
