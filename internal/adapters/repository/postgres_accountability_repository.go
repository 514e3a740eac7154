package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

type PostgresAccountabilityRepository struct {
	db *sqlx.DB
}

func NewPostgresAccountabilityRepository(db *sqlx.DB) *PostgresAccountabilityRepository {
	return &PostgresAccountabilityRepository{db: db}
}

func (r *PostgresAccountabilityRepository) GetSettings(ctx context.Context, userID string) (*domain.AccountabilitySettings, error) {
	var settings domain.AccountabilitySettings
	err := r.db.GetContext(ctx, &settings,
		`SELECT * FROM accountability_settings WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.Penalties = []*domain.Penalty{}
	err = r.db.SelectContext(ctx, &settings.Penalties,
		`SELECT * FROM penalties WHERE settings_id = $1 ORDER BY created_at ASC`, settings.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load penalties: %w", err)
	}

	settings.Rewards = []*domain.Reward{}
	err = r.db.SelectContext(ctx, &settings.Rewards,
		`SELECT * FROM rewards WHERE settings_id = $1 ORDER BY created_at ASC`, settings.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}

	return &settings, nil
}

func (r *PostgresAccountabilityRepository) CreateSettings(ctx context.Context, settings *domain.AccountabilitySettings) error {
	query := `
		INSERT INTO accountability_settings (id, user_id, goal_percentage, created_at, updated_at)
		VALUES (:id, :user_id, :goal_percentage, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

func (r *PostgresAccountabilityRepository) UpdateGoal(ctx context.Context, settingsID string, goalPercentage int) error {
	query := `
		UPDATE accountability_settings
		SET goal_percentage = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, goalPercentage, settingsID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}

func (r *PostgresAccountabilityRepository) AddPenalty(ctx context.Context, p *domain.Penalty) error {
	query := `
		INSERT INTO penalties (id, settings_id, description, created_at)
		VALUES (:id, :settings_id, :description, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to add penalty: %w", err)
	}
	return nil
}

func (r *PostgresAccountabilityRepository) RemovePenalty(ctx context.Context, settingsID, penaltyID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM penalties WHERE id = $1 AND settings_id = $2`, penaltyID, settingsID)
	if err != nil {
		return fmt.Errorf("failed to remove penalty: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPenaltyNotFound
	}
	return nil
}

func (r *PostgresAccountabilityRepository) AddReward(ctx context.Context, rw *domain.Reward) error {
	query := `
		INSERT INTO rewards (id, settings_id, description, created_at)
		VALUES (:id, :settings_id, :description, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, rw); err != nil {
		return fmt.Errorf("failed to add reward: %w", err)
	}
	return nil
}

func (r *PostgresAccountabilityRepository) RemoveReward(ctx context.Context, settingsID, rewardID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM rewards WHERE id = $1 AND settings_id = $2`, rewardID, settingsID)
	if err != nil {
		return fmt.Errorf("failed to remove reward: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRewardNotFound
	}
	return nil
}

func (r *PostgresAccountabilityRepository) GetLog(ctx context.Context, userID string, date tracking.Date) (*domain.AccountabilityLog, error) {
	var log domain.AccountabilityLog
	err := r.db.GetContext(ctx, &log,
		`SELECT * FROM accountability_logs WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to load log: %w", err)
	}
	return &log, nil
}

// SaveLog upserts on the (user_id, date) unique key so concurrent refreshes
// for the same day collapse into one row.
func (r *PostgresAccountabilityRepository) SaveLog(ctx context.Context, log *domain.AccountabilityLog) error {
	query := `
		INSERT INTO accountability_logs (
			id, user_id, date, completion_rate, goal_met,
			penalty_applied, applied_penalty_id, reward_claimed, claimed_reward_id,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :date, :completion_rate, :goal_met,
			:penalty_applied, :applied_penalty_id, :reward_claimed, :claimed_reward_id,
			:created_at, :updated_at
		)
		ON CONFLICT (user_id, date) DO UPDATE SET
			completion_rate = EXCLUDED.completion_rate,
			goal_met = EXCLUDED.goal_met,
			penalty_applied = EXCLUDED.penalty_applied,
			applied_penalty_id = EXCLUDED.applied_penalty_id,
			reward_claimed = EXCLUDED.reward_claimed,
			claimed_reward_id = EXCLUDED.claimed_reward_id,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *PostgresAccountabilityRepository) ListLogs(ctx context.Context, userID string, since tracking.Date) ([]*domain.AccountabilityLog, error) {
	logs := []*domain.AccountabilityLog{}

	query := `
		SELECT * FROM accountability_logs
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC`

	if err := r.db.SelectContext(ctx, &logs, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}
