package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
)

const fallbackInterval = 24 * time.Hour

// Policy controls how often each digest category may be re-sent.
type Policy struct {
	Intervals map[domain.NotificationCategory]time.Duration
	// RecordEmpty advances the cooldown even when a category produced no
	// section on this run.
	RecordEmpty bool
}

func DefaultPolicy() Policy {
	return Policy{
		Intervals: map[domain.NotificationCategory]time.Duration{
			domain.CategoryCertificateExpiry: 24 * time.Hour,
			domain.CategoryProjectReminders:  24 * time.Hour,
			domain.CategoryProjectUpdates:    24 * time.Hour,
			domain.CategoryWeeklyReports:     7 * 24 * time.Hour,
		},
		RecordEmpty: true,
	}
}

// Interval returns the category's configured interval, or 24h when the policy
// has none. Configured values are checked by config.Validate at startup.
func (p Policy) Interval(category domain.NotificationCategory) time.Duration {
	if d, ok := p.Intervals[category]; ok && d > 0 {
		return d
	}
	return fallbackInterval
}

// ShouldSend reports whether at least minInterval has elapsed since lastSent.
// A category that was never sent is always due.
func ShouldSend(lastSent *time.Time, now time.Time, minInterval time.Duration) bool {
	if lastSent == nil {
		return true
	}
	return now.Sub(*lastSent) >= minInterval
}

type Tracker interface {
	Due(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, now time.Time) (bool, error)
	RecordSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, now time.Time) error
	ShouldRecord(producedSection bool) bool
	Policy() Policy
}

type tracker struct {
	logs   repository.NotificationLogRepository
	policy Policy
}

func NewTracker(logs repository.NotificationLogRepository, policy Policy) Tracker {
	return &tracker{logs: logs, policy: policy}
}

func (t *tracker) Due(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, now time.Time) (bool, error) {
	lastSent, err := t.logs.GetLastSent(ctx, userID, category)
	if err != nil {
		return false, fmt.Errorf("failed to get last sent for %s: %w", category, err)
	}
	return ShouldSend(lastSent, now, t.policy.Interval(category)), nil
}

func (t *tracker) RecordSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, now time.Time) error {
	if err := t.logs.UpsertLastSent(ctx, userID, category, now); err != nil {
		return fmt.Errorf("failed to record %s for user %s: %w", category, userID, err)
	}
	return nil
}

func (t *tracker) ShouldRecord(producedSection bool) bool {
	return producedSection || t.policy.RecordEmpty
}

func (t *tracker) Policy() Policy {
	return t.policy
}
