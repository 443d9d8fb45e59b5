// Package bootstrap connects the backing services shared by every command.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"gondola-rental/internal/config"
	"gondola-rental/internal/domain"
	"gondola-rental/internal/pkg/logger"
	"gondola-rental/internal/repository"
	"gondola-rental/internal/service"
	"gondola-rental/internal/service/email"
	"gondola-rental/internal/service/runlock"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	DB       *sqlx.DB
	Redis    *redis.Client
	Services *service.Services
}

// New loads configuration and connects postgres, Redis and MinIO. Redis and
// MinIO are optional: a failed connection disables the run lease or the
// report archive with a warning.
func New() (*App, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, run lease disabled")
		redisClient = nil
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to MinIO, run reports will not be archived")
		minioClient = nil
	}

	repos := repository.NewRepositories(db)

	return &App{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Redis:    redisClient,
		Services: service.NewServices(repos, redisClient, minioClient, cfg, log),
	}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// RunJob executes one batch job and returns the process exit code. A held
// lease is not a failure.
func (a *App) RunJob(ctx context.Context, job domain.JobName) int {
	report, err := a.Services.Executor.Execute(ctx, job)
	if errors.Is(err, runlock.ErrLockHeld) {
		return 0
	}
	if err != nil {
		return 1
	}

	a.Logger.Info().
		Str("job", string(job)).
		Int("units", report.Units).
		Int("sent", report.EmailsSent).
		Int("send_failures", report.SendFailures).
		Int("query_errors", report.QueryErrors).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("run complete")
	return 0
}

// ReportStartupFailure mails ADMIN_EMAIL when a batch command cannot start,
// typically because the database is unreachable.
func ReportStartupFailure(job domain.JobName, cause error) {
	cfg := config.Load()
	if cfg.AdminEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MailSendTimeout)
	defer cancel()

	subject := fmt.Sprintf("Gondola Manager %s run failed", job)
	body := fmt.Sprintf("<p>The %s run could not start.</p><pre>%s</pre>", job, html.EscapeString(cause.Error()))
	if err := email.NewService(cfg).Send(ctx, cfg.AdminEmail, subject, body); err != nil {
		zlog.Error().Err(err).Msg("failed to notify admin")
	}
}
