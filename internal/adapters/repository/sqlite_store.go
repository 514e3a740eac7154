package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

// SQLiteStore backs the local (offline, single-user) mode with an embedded
// database instead of Postgres. It implements the same repository interfaces,
// so every derived computation runs through the exact same code path as the
// server-backed mode.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	title      TEXT NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT 1,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	id             TEXT PRIMARY KEY,
	habit_id       TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_at   TIMESTAMP NOT NULL,
	completed_date DATE NOT NULL,
	UNIQUE (habit_id, completed_date)
);

CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	title        TEXT NOT NULL,
	is_completed BOOLEAN NOT NULL DEFAULT 0,
	priority     TEXT NOT NULL DEFAULT 'medium',
	due_date     TIMESTAMP,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS accountability_settings (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL UNIQUE,
	goal_percentage INTEGER NOT NULL DEFAULT 80,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS penalties (
	id          TEXT PRIMARY KEY,
	settings_id TEXT NOT NULL REFERENCES accountability_settings(id) ON DELETE CASCADE,
	description TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS rewards (
	id          TEXT PRIMARY KEY,
	settings_id TEXT NOT NULL REFERENCES accountability_settings(id) ON DELETE CASCADE,
	description TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS accountability_logs (
	id                 TEXT PRIMARY KEY,
	user_id            TEXT NOT NULL,
	date               DATE NOT NULL,
	completion_rate    REAL NOT NULL DEFAULT 0,
	goal_met           BOOLEAN NOT NULL DEFAULT 0,
	penalty_applied    BOOLEAN NOT NULL DEFAULT 0,
	applied_penalty_id TEXT,
	reward_claimed     BOOLEAN NOT NULL DEFAULT 0,
	claimed_reward_id  TEXT,
	created_at         TIMESTAMP NOT NULL,
	updated_at         TIMESTAMP NOT NULL,
	UNIQUE (user_id, date)
);
`

// OpenSQLiteStore opens (creating if necessary) the embedded database at path
// and bootstraps the schema.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

func (s *SQLiteStore) Habits() *SQLiteHabitRepository {
	return &SQLiteHabitRepository{db: s.db}
}

func (s *SQLiteStore) Completions() *SQLiteCompletionRepository {
	return &SQLiteCompletionRepository{db: s.db}
}

func (s *SQLiteStore) Tasks() *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: s.db}
}

func (s *SQLiteStore) Users() *SQLiteUserRepository {
	return &SQLiteUserRepository{db: s.db}
}

func (s *SQLiteStore) Accountability() *SQLiteAccountabilityRepository {
	return &SQLiteAccountabilityRepository{db: s.db}
}

func isSQLiteConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint")
}

type SQLiteHabitRepository struct {
	db *sql.DB
}

func (r *SQLiteHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (id, user_id, title, is_active, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.UserID, h.Title, h.IsActive, h.SortOrder, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepository) scan(row *sql.Row) (*domain.Habit, error) {
	var h domain.Habit
	err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.IsActive, &h.SortOrder, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *SQLiteHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, is_active, sort_order, created_at, updated_at
		FROM habits WHERE id = ?`, id)

	h, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}
	return h, nil
}

func (r *SQLiteHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, is_active, sort_order, created_at, updated_at
		FROM habits WHERE user_id = ?
		ORDER BY sort_order ASC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.IsActive, &h.SortOrder, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &h)
	}
	return habits, rows.Err()
}

func (r *SQLiteHabitRepository) MaxSortOrder(ctx context.Context, userID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), -1) FROM habits WHERE user_id = ?`, userID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read max sort order: %w", err)
	}
	return max, nil
}

func (r *SQLiteHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE habits SET title = ?, is_active = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`,
		h.Title, h.IsActive, h.SortOrder, h.UpdatedAt, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return requireRows(result, domain.ErrHabitNotFound)
}

func (r *SQLiteHabitRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return requireRows(result, domain.ErrHabitNotFound)
}

type SQLiteCompletionRepository struct {
	db *sql.DB
}

func (r *SQLiteCompletionRepository) Insert(ctx context.Context, event *domain.CompletionEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_completions (id, habit_id, completed_at, completed_date)
		VALUES (?, ?, ?, ?)`,
		event.ID, event.HabitID, event.CompletedAt, event.CompletedDate.String())
	if err != nil {
		if isSQLiteConstraint(err) {
			return domain.ErrCompletionExists
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepository) Delete(ctx context.Context, habitID string, date tracking.Date) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM habit_completions WHERE habit_id = ? AND completed_date = ?`,
		habitID, date.String())
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return requireRows(result, domain.ErrCompletionNotFound)
}

func (r *SQLiteCompletionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.CompletionEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var events []*domain.CompletionEvent
	for rows.Next() {
		var e domain.CompletionEvent
		if err := rows.Scan(&e.ID, &e.HabitID, &e.CompletedAt, &e.CompletedDate); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *SQLiteCompletionRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CompletionEvent, error) {
	return r.list(ctx, `
		SELECT id, habit_id, completed_at, completed_date
		FROM habit_completions WHERE habit_id = ?
		ORDER BY completed_date DESC`, habitID)
}

func (r *SQLiteCompletionRepository) ListSince(ctx context.Context, habitID string, since tracking.Date) ([]*domain.CompletionEvent, error) {
	return r.list(ctx, `
		SELECT id, habit_id, completed_at, completed_date
		FROM habit_completions WHERE habit_id = ? AND completed_date >= ?
		ORDER BY completed_date DESC`, habitID, since.String())
}

type SQLiteTaskRepository struct {
	db *sql.DB
}

func (r *SQLiteTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, is_completed, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.IsCompleted, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, is_completed, priority, due_date, created_at, updated_at
		FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.IsCompleted, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTaskRepository) ListByUserID(ctx context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, title, is_completed, priority, due_date, created_at, updated_at
		FROM tasks WHERE user_id = ?`
	args := []interface{}{userID}

	if filter.IsCompleted != nil {
		query += " AND is_completed = ?"
		args = append(args, *filter.IsCompleted)
	}
	if filter.Priority != nil {
		query += " AND priority = ?"
		args = append(args, *filter.Priority)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.IsCompleted, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepository) Update(ctx context.Context, t *domain.Task) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, is_completed = ?, priority = ?, due_date = ?, updated_at = ?
		WHERE id = ?`,
		t.Title, t.IsCompleted, t.Priority, t.DueDate, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRows(result, domain.ErrTaskNotFound)
}

func (r *SQLiteTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRows(result, domain.ErrTaskNotFound)
}

type SQLiteUserRepository struct {
	db *sql.DB
}

func (r *SQLiteUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isSQLiteConstraint(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *SQLiteUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

type SQLiteAccountabilityRepository struct {
	db *sql.DB
}

func (r *SQLiteAccountabilityRepository) GetSettings(ctx context.Context, userID string) (*domain.AccountabilitySettings, error) {
	var s domain.AccountabilitySettings
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, goal_percentage, created_at, updated_at
		FROM accountability_settings WHERE user_id = ?`, userID).
		Scan(&s.ID, &s.UserID, &s.GoalPercentage, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s.Penalties = []*domain.Penalty{}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, settings_id, description, created_at
		FROM penalties WHERE settings_id = ? ORDER BY created_at ASC`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load penalties: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Penalty
		if err := rows.Scan(&p.ID, &p.SettingsID, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		s.Penalties = append(s.Penalties, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.Rewards = []*domain.Reward{}
	rewardRows, err := r.db.QueryContext(ctx, `
		SELECT id, settings_id, description, created_at
		FROM rewards WHERE settings_id = ? ORDER BY created_at ASC`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}
	defer rewardRows.Close()
	for rewardRows.Next() {
		var rw domain.Reward
		if err := rewardRows.Scan(&rw.ID, &rw.SettingsID, &rw.Description, &rw.CreatedAt); err != nil {
			return nil, err
		}
		s.Rewards = append(s.Rewards, &rw)
	}

	return &s, rewardRows.Err()
}

func (r *SQLiteAccountabilityRepository) CreateSettings(ctx context.Context, s *domain.AccountabilitySettings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accountability_settings (id, user_id, goal_percentage, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.GoalPercentage, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

func (r *SQLiteAccountabilityRepository) UpdateGoal(ctx context.Context, settingsID string, goalPercentage int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE accountability_settings
		SET goal_percentage = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, goalPercentage, settingsID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return requireRows(result, domain.ErrSettingsNotFound)
}

func (r *SQLiteAccountabilityRepository) AddPenalty(ctx context.Context, p *domain.Penalty) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO penalties (id, settings_id, description, created_at)
		VALUES (?, ?, ?, ?)`,
		p.ID, p.SettingsID, p.Description, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add penalty: %w", err)
	}
	return nil
}

func (r *SQLiteAccountabilityRepository) RemovePenalty(ctx context.Context, settingsID, penaltyID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM penalties WHERE id = ? AND settings_id = ?`, penaltyID, settingsID)
	if err != nil {
		return fmt.Errorf("failed to remove penalty: %w", err)
	}
	return requireRows(result, domain.ErrPenaltyNotFound)
}

func (r *SQLiteAccountabilityRepository) AddReward(ctx context.Context, rw *domain.Reward) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rewards (id, settings_id, description, created_at)
		VALUES (?, ?, ?, ?)`,
		rw.ID, rw.SettingsID, rw.Description, rw.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add reward: %w", err)
	}
	return nil
}

func (r *SQLiteAccountabilityRepository) RemoveReward(ctx context.Context, settingsID, rewardID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM rewards WHERE id = ? AND settings_id = ?`, rewardID, settingsID)
	if err != nil {
		return fmt.Errorf("failed to remove reward: %w", err)
	}
	return requireRows(result, domain.ErrRewardNotFound)
}

func (r *SQLiteAccountabilityRepository) GetLog(ctx context.Context, userID string, date tracking.Date) (*domain.AccountabilityLog, error) {
	var l domain.AccountabilityLog
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, completion_rate, goal_met,
		       penalty_applied, applied_penalty_id, reward_claimed, claimed_reward_id,
		       created_at, updated_at
		FROM accountability_logs WHERE user_id = ? AND date = ?`,
		userID, date.String()).
		Scan(&l.ID, &l.UserID, &l.Date, &l.CompletionRate, &l.GoalMet,
			&l.PenaltyApplied, &l.AppliedPenaltyID, &l.RewardClaimed, &l.ClaimedRewardID,
			&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to load log: %w", err)
	}
	return &l, nil
}

func (r *SQLiteAccountabilityRepository) SaveLog(ctx context.Context, log *domain.AccountabilityLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accountability_logs (
			id, user_id, date, completion_rate, goal_met,
			penalty_applied, applied_penalty_id, reward_claimed, claimed_reward_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			completion_rate = excluded.completion_rate,
			goal_met = excluded.goal_met,
			penalty_applied = excluded.penalty_applied,
			applied_penalty_id = excluded.applied_penalty_id,
			reward_claimed = excluded.reward_claimed,
			claimed_reward_id = excluded.claimed_reward_id,
			updated_at = excluded.updated_at`,
		log.ID, log.UserID, log.Date.String(), log.CompletionRate, log.GoalMet,
		log.PenaltyApplied, log.AppliedPenaltyID, log.RewardClaimed, log.ClaimedRewardID,
		log.CreatedAt, log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *SQLiteAccountabilityRepository) ListLogs(ctx context.Context, userID string, since tracking.Date) ([]*domain.AccountabilityLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, completion_rate, goal_met,
		       penalty_applied, applied_penalty_id, reward_claimed, claimed_reward_id,
		       created_at, updated_at
		FROM accountability_logs WHERE user_id = ? AND date >= ?
		ORDER BY date DESC`, userID, since.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.AccountabilityLog
	for rows.Next() {
		var l domain.AccountabilityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.CompletionRate, &l.GoalMet,
			&l.PenaltyApplied, &l.AppliedPenaltyID, &l.RewardClaimed, &l.ClaimedRewardID,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

func requireRows(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
