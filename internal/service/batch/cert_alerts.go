package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
	"gondola-rental/internal/service/digest"
	"gondola-rental/internal/service/email"
)

// ShouldSendForFrequency reports whether a subscription is due on today's
// calendar date.
func ShouldSendForFrequency(frequency domain.AlertFrequency, today time.Time) bool {
	return frequency.DueOn(today)
}

// CertAlertRunner emails subscribers about certificates on their gondola that
// expire within the subscription threshold.
type CertAlertRunner struct {
	subscriptions repository.SubscriptionRepository
	gondolas      repository.GondolaRepository
	documents     repository.DocumentRepository
	mailer        email.Mailer
	logger        zerolog.Logger
	loc           *time.Location
	now           func() time.Time
}

func NewCertAlertRunner(
	subscriptions repository.SubscriptionRepository,
	gondolas repository.GondolaRepository,
	documents repository.DocumentRepository,
	mailer email.Mailer,
	loc *time.Location,
	logger zerolog.Logger,
) *CertAlertRunner {
	if loc == nil {
		loc = time.UTC
	}
	return &CertAlertRunner{
		subscriptions: subscriptions,
		gondolas:      gondolas,
		documents:     documents,
		mailer:        mailer,
		logger:        logger.With().Str("job", string(domain.JobCertAlerts)).Logger(),
		loc:           loc,
		now:           time.Now,
	}
}

func (r *CertAlertRunner) SetClock(now func() time.Time) {
	r.now = now
}

func (r *CertAlertRunner) Name() domain.JobName {
	return domain.JobCertAlerts
}

func (r *CertAlertRunner) Run(ctx context.Context) (*domain.RunReport, error) {
	report := &domain.RunReport{Job: r.Name(), StartedAt: r.now()}

	subs, err := r.subscriptions.ListCertAlerts(ctx)
	if err != nil {
		report.FinishedAt = r.now()
		return report, fmt.Errorf("failed to list cert alert subscriptions: %w", err)
	}

	today := r.now().In(r.loc)
	r.logger.Info().Int("subscriptions", len(subs)).Str("weekday", today.Weekday().String()).Msg("starting cert alert run")

	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = r.now()
			return report, err
		}

		report.Units++
		if !ShouldSendForFrequency(sub.Frequency, today) {
			report.Skipped++
			continue
		}

		if err := r.processSubscription(ctx, sub, report); err != nil {
			report.AddError(err)
			r.logger.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("subscription failed")
		}
	}

	report.FinishedAt = r.now()
	r.logger.Info().
		Int("subscriptions", report.Units).
		Int("skipped", report.Skipped).
		Int("sent", report.EmailsSent).
		Int("send_failures", report.SendFailures).
		Msg("cert alert run finished")

	return report, nil
}

func (r *CertAlertRunner) processSubscription(ctx context.Context, sub domain.CertAlertSubscription, report *domain.RunReport) error {
	gondola, err := r.gondolas.GetByID(ctx, sub.GondolaID)
	if err != nil {
		report.QueryErrors++
		return fmt.Errorf("failed to get gondola %s: %w", sub.GondolaID, err)
	}

	docs, err := r.documents.ListByGondola(ctx, sub.GondolaID)
	if err != nil {
		report.QueryErrors++
		return fmt.Errorf("failed to list documents for gondola %s: %w", sub.GondolaID, err)
	}

	now := r.now()
	expiring := ExpiringDocuments(docs, now, sub.Threshold)

	subject, html, err := digest.ComposeCertAlert(*gondola, expiring, sub.Threshold, r.loc)
	if errors.Is(err, digest.ErrEmptyDigest) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.mailer.Send(ctx, sub.Email, subject, html); err != nil {
		report.SendFailures++
		return fmt.Errorf("failed to send alert to %s: %w", sub.Email, err)
	}

	report.EmailsSent++
	r.logger.Info().
		Str("subscription_id", sub.ID.String()).
		Str("gondola", gondola.SerialNumber).
		Int("documents", len(expiring)).
		Msg("cert alert sent")
	return nil
}

// ExpiringDocuments keeps documents that expire between today and
// thresholdDays from now, inclusive.
func ExpiringDocuments(docs []domain.Document, now time.Time, thresholdDays int) []domain.DocumentStatus {
	var expiring []domain.DocumentStatus
	for _, d := range docs {
		status := domain.NewDocumentStatus(d, now, thresholdDays)
		if status.ExpiryStatus == domain.ExpiryExpiring {
			expiring = append(expiring, status)
		}
	}
	return expiring
}
