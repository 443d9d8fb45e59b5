package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
	"gondola-rental/internal/service/cooldown"
)

var ErrUserNotFound = errors.New("user not found")

// CategoryState is the notification log row of one category together with the
// cooldown that currently applies to it.
type CategoryState struct {
	Category     domain.NotificationCategory `json:"category"`
	Enabled      bool                        `json:"enabled"`
	LastSent     *domain.NotificationLog     `json:"last_sent,omitempty"`
	Interval     string                      `json:"interval"`
	NextEligible *string                     `json:"next_eligible,omitempty"`
}

type Service interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
	ListLogs(ctx context.Context, userID uuid.UUID) ([]CategoryState, error)
}

type service struct {
	userRepo repository.UserRepository
	logRepo  repository.NotificationLogRepository
	policy   cooldown.Policy
	logger   zerolog.Logger
}

func NewService(userRepo repository.UserRepository, logRepo repository.NotificationLogRepository, policy cooldown.Policy, logger zerolog.Logger) Service {
	return &service{
		userRepo: userRepo,
		logRepo:  logRepo,
		policy:   policy,
		logger:   logger,
	}
}

// GetPreferences returns the user's stored preferences merged over the
// defaults, exactly as the digest runner sees them.
func (s *service) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	user, err := s.userRepo.GetWithPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	prefs, err := domain.ParsePreferences(user.Preferences)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("invalid stored preferences, defaults applied")
	}
	return &prefs, nil
}

func (s *service) ListLogs(ctx context.Context, userID uuid.UUID) ([]CategoryState, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}

	byCategory := make(map[domain.NotificationCategory]domain.NotificationLog, len(logs))
	for _, l := range logs {
		byCategory[l.NotificationType] = l
	}

	states := make([]CategoryState, 0, len(domain.DigestCategories))
	for _, category := range domain.DigestCategories {
		interval := s.policy.Interval(category)
		state := CategoryState{
			Category: category,
			Enabled:  prefs.EmailNotifications && prefs.Enabled(category),
			Interval: interval.String(),
		}
		if l, ok := byCategory[category]; ok {
			state.LastSent = &l
			if l.LastSent != nil {
				next := l.LastSent.Add(interval).UTC().Format(time.RFC3339)
				state.NextEligible = &next
			}
		}
		states = append(states, state)
	}

	return states, nil
}
