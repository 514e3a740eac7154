package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

var (
	ErrPenaltyNotFound  = errors.New("penalty not found")
	ErrRewardNotFound   = errors.New("reward not found")
	ErrLogNotFound      = errors.New("no accountability log for today")
	ErrSettingsNotFound = errors.New("accountability settings not found")
	ErrDescriptionEmpty = errors.New("description cannot be empty")
)

const DefaultGoalPercentage = 80

// AccountabilitySettings holds a user's self-assigned goal threshold plus the
// penalty and reward catalogs it gates.
type AccountabilitySettings struct {
	ID             string     `json:"id" db:"id"`
	UserID         string     `json:"user_id" db:"user_id"`
	GoalPercentage int        `json:"goal_percentage" db:"goal_percentage"`
	Penalties      []*Penalty `json:"penalties" db:"-"`
	Rewards        []*Reward  `json:"rewards" db:"-"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type Penalty struct {
	ID          string    `json:"id" db:"id"`
	SettingsID  string    `json:"-" db:"settings_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Reward struct {
	ID          string    `json:"id" db:"id"`
	SettingsID  string    `json:"-" db:"settings_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AccountabilityLog is one day's verdict: the completion percentage across
// active habits and whether the goal was met, plus which penalty/reward the
// user acted on. One log per (user, date).
type AccountabilityLog struct {
	ID               string        `json:"id" db:"id"`
	UserID           string        `json:"user_id" db:"user_id"`
	Date             tracking.Date `json:"date" db:"date"`
	CompletionRate   float64       `json:"completion_rate" db:"completion_rate"`
	GoalMet          bool          `json:"goal_met" db:"goal_met"`
	PenaltyApplied   bool          `json:"penalty_applied" db:"penalty_applied"`
	AppliedPenaltyID *string       `json:"applied_penalty_id,omitempty" db:"applied_penalty_id"`
	RewardClaimed    bool          `json:"reward_claimed" db:"reward_claimed"`
	ClaimedRewardID  *string       `json:"claimed_reward_id,omitempty" db:"claimed_reward_id"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

func NewAccountabilitySettings(userID string) *AccountabilitySettings {
	now := time.Now().UTC()
	return &AccountabilitySettings{
		ID:             uuid.NewString(),
		UserID:         userID,
		GoalPercentage: DefaultGoalPercentage,
		Penalties:      []*Penalty{},
		Rewards:        []*Reward{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SetGoal clamps the percentage into 0..100.
func (s *AccountabilitySettings) SetGoal(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	s.GoalPercentage = pct
	s.UpdatedAt = time.Now().UTC()
}

func NewPenalty(settingsID, description string) (*Penalty, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, ErrDescriptionEmpty
	}
	return &Penalty{
		ID:          uuid.NewString(),
		SettingsID:  settingsID,
		Description: trimmed,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func NewReward(settingsID, description string) (*Reward, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, ErrDescriptionEmpty
	}
	return &Reward{
		ID:          uuid.NewString(),
		SettingsID:  settingsID,
		Description: trimmed,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func NewAccountabilityLog(userID string, date tracking.Date, rate float64, goalMet bool) *AccountabilityLog {
	now := time.Now().UTC()
	return &AccountabilityLog{
		ID:             uuid.NewString(),
		UserID:         userID,
		Date:           date,
		CompletionRate: rate,
		GoalMet:        goalMet,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
