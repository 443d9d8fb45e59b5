package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gondola-rental/internal/config"
	"gondola-rental/internal/repository"
	"gondola-rental/internal/service/archive"
	"gondola-rental/internal/service/auth"
	"gondola-rental/internal/service/batch"
	"gondola-rental/internal/service/cooldown"
	"gondola-rental/internal/service/dashboard"
	"gondola-rental/internal/service/digest"
	"gondola-rental/internal/service/email"
	"gondola-rental/internal/service/gondola"
	"gondola-rental/internal/service/notification"
	"gondola-rental/internal/service/runlock"
)

type Services struct {
	Auth         auth.Service
	Email        email.Mailer
	Notification notification.Service
	Gondola      gondola.Service
	Dashboard    dashboard.Service
	UserDigest   *batch.UserDigestRunner
	CertAlerts   *batch.CertAlertRunner
	Executor     *batch.Executor
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config, logger zerolog.Logger) *Services {
	loc := cfg.Location()
	mailer := email.NewService(cfg)

	policy := cooldown.Policy{
		Intervals:   cfg.CooldownIntervals(),
		RecordEmpty: cfg.CooldownRecordEmpty,
	}
	tracker := cooldown.NewTracker(repos.NotificationLog, policy)

	userDigest := batch.NewUserDigestRunner(repos.User, tracker, digest.NewBuilders(repos, loc), mailer, logger)
	certAlerts := batch.NewCertAlertRunner(repos.Subscription, repos.Gondola, repos.Document, mailer, loc, logger)

	executor := batch.NewExecutor(
		runlock.NewLocker(redis, cfg.RunLockTTL),
		archive.NewArchiver(minioClient, cfg.MinIOBucket),
		mailer,
		cfg.AdminEmail,
		logger,
		userDigest,
		certAlerts,
	)

	return &Services{
		Auth:         auth.NewService(cfg.JWTSecret, cfg.JWTAccessExpiry),
		Email:        mailer,
		Notification: notification.NewService(repos.User, repos.NotificationLog, policy, logger),
		Gondola:      gondola.NewService(repos.Gondola, repos.Document),
		Dashboard:    dashboard.NewService(repos.Gondola, repos.Document, repos.Project, redis, cfg.DashboardCacheTTL, logger),
		UserDigest:   userDigest,
		CertAlerts:   certAlerts,
		Executor:     executor,
	}
}
