package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
	"gondola-rental/internal/service/cooldown"
	"gondola-rental/internal/service/digest"
	"gondola-rental/internal/service/email"
)

// Job is one batch process that can be executed under a run lease.
type Job interface {
	Name() domain.JobName
	Run(ctx context.Context) (*domain.RunReport, error)
}

// UserDigestRunner sends each user one digest covering every enabled
// category whose cooldown has elapsed.
type UserDigestRunner struct {
	users    repository.UserRepository
	tracker  cooldown.Tracker
	builders map[domain.NotificationCategory]digest.Builder
	mailer   email.Mailer
	logger   zerolog.Logger
	now      func() time.Time
}

func NewUserDigestRunner(
	users repository.UserRepository,
	tracker cooldown.Tracker,
	builders map[domain.NotificationCategory]digest.Builder,
	mailer email.Mailer,
	logger zerolog.Logger,
) *UserDigestRunner {
	return &UserDigestRunner{
		users:    users,
		tracker:  tracker,
		builders: builders,
		mailer:   mailer,
		logger:   logger.With().Str("job", string(domain.JobUserDigest)).Logger(),
		now:      time.Now,
	}
}

func (r *UserDigestRunner) SetClock(now func() time.Time) {
	r.now = now
}

func (r *UserDigestRunner) Name() domain.JobName {
	return domain.JobUserDigest
}

// Run processes users one at a time. Only a failure to load the user list is
// returned; everything else is logged and counted on the report.
func (r *UserDigestRunner) Run(ctx context.Context) (*domain.RunReport, error) {
	report := &domain.RunReport{Job: r.Name(), StartedAt: r.now()}

	users, err := r.users.ListWithPreferences(ctx)
	if err != nil {
		report.FinishedAt = r.now()
		return report, fmt.Errorf("failed to list users: %w", err)
	}

	r.logger.Info().Int("users", len(users)).Msg("starting digest run")

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = r.now()
			return report, err
		}
		r.processUser(ctx, user, report)
	}

	report.FinishedAt = r.now()
	r.logger.Info().
		Int("users", report.Units).
		Int("skipped", report.Skipped).
		Int("sent", report.EmailsSent).
		Int("send_failures", report.SendFailures).
		Int("query_errors", report.QueryErrors).
		Msg("digest run finished")

	return report, nil
}

func (r *UserDigestRunner) processUser(ctx context.Context, user domain.UserWithPreferences, report *domain.RunReport) {
	log := r.logger.With().Str("user_id", user.ID.String()).Logger()
	report.Units++

	prefs, err := domain.ParsePreferences(user.Preferences)
	if err != nil {
		log.Warn().Err(err).Msg("invalid stored preferences, defaults applied")
	}

	if !prefs.EmailNotifications {
		report.Skipped++
		log.Debug().Msg("email notifications disabled")
		return
	}

	now := r.now()
	var sections []domain.DigestSection

	for _, category := range domain.DigestCategories {
		if !prefs.Enabled(category) {
			continue
		}

		clog := log.With().Str("category", string(category)).Logger()

		due, err := r.tracker.Due(ctx, user.ID, category, now)
		if err != nil {
			report.QueryErrors++
			report.AddError(err)
			clog.Error().Err(err).Msg("cooldown lookup failed")
			continue
		}
		if !due {
			clog.Debug().Msg("category in cooldown")
			continue
		}

		builder, ok := r.builders[category]
		if !ok {
			continue
		}

		section, err := builder.Build(ctx, now)
		if err != nil {
			report.QueryErrors++
			report.AddError(err)
			clog.Error().Err(err).Msg("failed to build section")
			continue
		}
		if section != nil {
			sections = append(sections, *section)
		}

		if r.tracker.ShouldRecord(section != nil) {
			if err := r.tracker.RecordSent(ctx, user.ID, category, now); err != nil {
				report.AddError(err)
				clog.Error().Err(err).Msg("failed to record cooldown")
			}
		}
	}

	html, err := digest.Compose(sections)
	if errors.Is(err, digest.ErrEmptyDigest) {
		log.Debug().Msg("nothing to send")
		return
	}
	if err != nil {
		report.AddError(err)
		log.Error().Err(err).Msg("failed to compose digest")
		return
	}

	if err := r.mailer.Send(ctx, user.Email, digest.DigestSubject, html); err != nil {
		report.SendFailures++
		report.AddError(fmt.Errorf("send to user %s: %w", user.ID, err))
		log.Error().Err(err).Msg("failed to send digest")
		return
	}

	report.EmailsSent++
	log.Info().Int("sections", len(sections)).Msg("digest sent")
}
