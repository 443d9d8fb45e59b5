package batch

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/service/archive"
	"gondola-rental/internal/service/email"
	"gondola-rental/internal/service/runlock"
)

const releaseTimeout = 10 * time.Second

var ErrUnknownJob = errors.New("unknown job")

// Executor runs jobs under a run lease, archives their reports and keeps the
// latest report of each job in memory.
type Executor struct {
	jobs       map[domain.JobName]Job
	locker     runlock.Locker
	archiver   archive.Archiver
	mailer     email.Mailer
	adminEmail string
	logger     zerolog.Logger

	mu     sync.RWMutex
	latest map[domain.JobName]*domain.RunReport
}

func NewExecutor(locker runlock.Locker, archiver archive.Archiver, mailer email.Mailer, adminEmail string, logger zerolog.Logger, jobs ...Job) *Executor {
	e := &Executor{
		jobs:       make(map[domain.JobName]Job, len(jobs)),
		locker:     locker,
		archiver:   archiver,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
		latest:     make(map[domain.JobName]*domain.RunReport),
	}
	for _, job := range jobs {
		e.jobs[job.Name()] = job
	}
	return e
}

// Execute runs the named job. runlock.ErrLockHeld is returned untouched when
// another invocation holds the lease.
func (e *Executor) Execute(ctx context.Context, name domain.JobName) (*domain.RunReport, error) {
	job, ok := e.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	log := e.logger.With().Str("job", string(name)).Logger()

	release, err := e.locker.Acquire(ctx, name)
	if err != nil {
		if errors.Is(err, runlock.ErrLockHeld) {
			log.Warn().Msg("another run holds the lease, skipping")
		}
		return nil, err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			log.Error().Err(err).Msg("failed to release lease")
		}
	}()

	report, runErr := job.Run(ctx)
	if report != nil {
		e.store(ctx, report, log)
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("run failed")
		e.notifyAdmin(ctx, name, runErr, log)
		return report, runErr
	}

	return report, nil
}

func (e *Executor) Latest(name domain.JobName) (*domain.RunReport, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	report, ok := e.latest[name]
	return report, ok
}

func (e *Executor) store(ctx context.Context, report *domain.RunReport, log zerolog.Logger) {
	e.mu.Lock()
	e.latest[report.Job] = report
	e.mu.Unlock()

	key, err := e.archiver.Store(context.WithoutCancel(ctx), report)
	if err != nil {
		log.Error().Err(err).Msg("failed to archive run report")
		return
	}
	if key != "" {
		log.Debug().Str("object", key).Msg("run report archived")
	}
}

func (e *Executor) notifyAdmin(ctx context.Context, name domain.JobName, runErr error, log zerolog.Logger) {
	if e.adminEmail == "" {
		return
	}

	subject := fmt.Sprintf("Gondola Manager %s run failed", name)
	body := fmt.Sprintf("<p>The %s run failed at %s.</p><pre>%s</pre>",
		name, time.Now().UTC().Format(time.RFC3339), html.EscapeString(runErr.Error()))

	if err := e.mailer.Send(context.WithoutCancel(ctx), e.adminEmail, subject, body); err != nil {
		log.Error().Err(err).Msg("failed to notify admin")
	}
}
