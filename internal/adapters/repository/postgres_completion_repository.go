package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

// Insert relies on the unique index over (habit_id, completed_date) as the
// final authority against duplicate completions: a lost race comes back as
// ErrCompletionExists exactly like the aggregator's own pre-check.
func (r *PostgresCompletionRepository) Insert(ctx context.Context, event *domain.CompletionEvent) error {
	query := `
		INSERT INTO habit_completions (id, habit_id, completed_at, completed_date)
		VALUES (:id, :habit_id, :completed_at, :completed_date)`

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return domain.ErrCompletionExists
			case "23503":
				return domain.ErrHabitNotFound
			}
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) Delete(ctx context.Context, habitID string, date tracking.Date) error {
	query := `DELETE FROM habit_completions WHERE habit_id = $1 AND completed_date = $2`

	result, err := r.db.ExecContext(ctx, query, habitID, date)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompletionNotFound
	}
	return nil
}

func (r *PostgresCompletionRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CompletionEvent, error) {
	events := []*domain.CompletionEvent{}

	query := `
		SELECT * FROM habit_completions
		WHERE habit_id = $1
		ORDER BY completed_date DESC`

	if err := r.db.SelectContext(ctx, &events, query, habitID); err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return events, nil
}

func (r *PostgresCompletionRepository) ListSince(ctx context.Context, habitID string, since tracking.Date) ([]*domain.CompletionEvent, error) {
	events := []*domain.CompletionEvent{}

	query := `
		SELECT * FROM habit_completions
		WHERE habit_id = $1 AND completed_date >= $2
		ORDER BY completed_date DESC`

	if err := r.db.SelectContext(ctx, &events, query, habitID, since); err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return events, nil
}
