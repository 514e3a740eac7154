package services

import (
	"context"
	"errors"
	"time"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

// AccountabilityService ties the aggregate daily completion percentage to
// self-assigned penalties and rewards. It consumes the tracker's summaries; it
// never computes streaks itself.
type AccountabilityService struct {
	repo        domain.AccountabilityRepository
	habits      domain.HabitRepository
	completions domain.CompletionRepository
	now         func() time.Time
}

func NewAccountabilityService(repo domain.AccountabilityRepository, habits domain.HabitRepository, completions domain.CompletionRepository) *AccountabilityService {
	return &AccountabilityService{
		repo:        repo,
		habits:      habits,
		completions: completions,
		now:         time.Now,
	}
}

// Settings returns the user's settings, creating the defaults on first touch.
func (s *AccountabilityService) Settings(ctx context.Context, userID string) (*domain.AccountabilitySettings, error) {
	settings, err := s.repo.GetSettings(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, domain.ErrSettingsNotFound) {
		return nil, err
	}

	settings = domain.NewAccountabilitySettings(userID)
	if err := s.repo.CreateSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *AccountabilityService) UpdateGoal(ctx context.Context, userID string, goalPercentage int) (*domain.AccountabilitySettings, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.SetGoal(goalPercentage)
	if err := s.repo.UpdateGoal(ctx, settings.ID, settings.GoalPercentage); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *AccountabilityService) AddPenalty(ctx context.Context, userID, description string) (*domain.Penalty, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	penalty, err := domain.NewPenalty(settings.ID, description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddPenalty(ctx, penalty); err != nil {
		return nil, err
	}
	return penalty, nil
}

func (s *AccountabilityService) RemovePenalty(ctx context.Context, userID, penaltyID string) error {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemovePenalty(ctx, settings.ID, penaltyID)
}

func (s *AccountabilityService) AddReward(ctx context.Context, userID, description string) (*domain.Reward, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	reward, err := domain.NewReward(settings.ID, description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddReward(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *AccountabilityService) RemoveReward(ctx context.Context, userID, rewardID string) error {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemoveReward(ctx, settings.ID, rewardID)
}

// DailyRate computes today's aggregate: completed active habits over total
// active habits, as a percentage.
func (s *AccountabilityService) DailyRate(ctx context.Context, userID string, today tracking.Date) (completed, total int, rate float64, err error) {
	habits, err := s.habits.ListByUserID(ctx, userID)
	if err != nil {
		return 0, 0, 0, err
	}

	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		total++

		events, err := s.completions.ListByHabitID(ctx, h.ID)
		if err != nil {
			return 0, 0, 0, err
		}
		for _, e := range events {
			if e.CompletedDate == today {
				completed++
				break
			}
		}
	}

	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	return completed, total, rate, nil
}

// UpsertTodayLog records (or refreshes) today's verdict against the current
// goal. Penalty/reward state on an existing log is preserved.
func (s *AccountabilityService) UpsertTodayLog(ctx context.Context, userID, clientDate string) (*domain.AccountabilityLog, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())

	_, _, rate, err := s.DailyRate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	goalMet := rate >= float64(settings.GoalPercentage)

	log, err := s.repo.GetLog(ctx, userID, today)
	if errors.Is(err, domain.ErrLogNotFound) {
		log = domain.NewAccountabilityLog(userID, today, rate, goalMet)
	} else if err != nil {
		return nil, err
	} else {
		log.CompletionRate = rate
		log.GoalMet = goalMet
		log.UpdatedAt = s.now().UTC()
	}

	if err := s.repo.SaveLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *AccountabilityService) TodayLog(ctx context.Context, userID, clientDate string) (*domain.AccountabilityLog, error) {
	today := tracking.ResolveToday(clientDate, s.now())
	return s.repo.GetLog(ctx, userID, today)
}

func (s *AccountabilityService) Logs(ctx context.Context, userID string, days int, clientDate string) ([]*domain.AccountabilityLog, error) {
	today := tracking.ResolveToday(clientDate, s.now())
	return s.repo.ListLogs(ctx, userID, today.AddDays(-days))
}

func (s *AccountabilityService) ApplyPenalty(ctx context.Context, userID, penaltyID, clientDate string) (*domain.AccountabilityLog, error) {
	return s.updateTodayLog(ctx, userID, clientDate, func(log *domain.AccountabilityLog) {
		log.PenaltyApplied = true
		log.AppliedPenaltyID = &penaltyID
	})
}

func (s *AccountabilityService) CancelPenalty(ctx context.Context, userID, clientDate string) (*domain.AccountabilityLog, error) {
	return s.updateTodayLog(ctx, userID, clientDate, func(log *domain.AccountabilityLog) {
		log.PenaltyApplied = false
		log.AppliedPenaltyID = nil
	})
}

func (s *AccountabilityService) ClaimReward(ctx context.Context, userID, rewardID, clientDate string) (*domain.AccountabilityLog, error) {
	return s.updateTodayLog(ctx, userID, clientDate, func(log *domain.AccountabilityLog) {
		log.RewardClaimed = true
		log.ClaimedRewardID = &rewardID
	})
}

func (s *AccountabilityService) CancelReward(ctx context.Context, userID, clientDate string) (*domain.AccountabilityLog, error) {
	return s.updateTodayLog(ctx, userID, clientDate, func(log *domain.AccountabilityLog) {
		log.RewardClaimed = false
		log.ClaimedRewardID = nil
	})
}

func (s *AccountabilityService) updateTodayLog(ctx context.Context, userID, clientDate string, mutate func(*domain.AccountabilityLog)) (*domain.AccountabilityLog, error) {
	today := tracking.ResolveToday(clientDate, s.now())

	log, err := s.repo.GetLog(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	mutate(log)
	log.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}
