package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gondola-rental/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) ListWithPreferences(ctx context.Context) ([]domain.UserWithPreferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWithPreferences), args.Error(1)
}

func (m *UserRepository) GetWithPreferences(ctx context.Context, id uuid.UUID) (*domain.UserWithPreferences, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWithPreferences), args.Error(1)
}

type GondolaRepository struct {
	mock.Mock
}

func (m *GondolaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Gondola, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gondola), args.Error(1)
}

func (m *GondolaRepository) ListAll(ctx context.Context) ([]domain.Gondola, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gondola), args.Error(1)
}

type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.Project, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *ProjectRepository) ListUpdatedSince(ctx context.Context, since time.Time) ([]domain.Project, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

type DocumentRepository struct {
	mock.Mock
}

func (m *DocumentRepository) ListCertificatesExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.CertificateDocument, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CertificateDocument), args.Error(1)
}

func (m *DocumentRepository) ListByGondola(ctx context.Context, gondolaID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, gondolaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *DocumentRepository) ListAll(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) ListCertAlerts(ctx context.Context) ([]domain.CertAlertSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CertAlertSubscription), args.Error(1)
}

type NotificationLogRepository struct {
	mock.Mock
}

func (m *NotificationLogRepository) GetLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory) (*time.Time, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *NotificationLogRepository) UpsertLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, sentAt time.Time) error {
	args := m.Called(ctx, userID, category, sentAt)
	return args.Error(0)
}

func (m *NotificationLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NotificationLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationLog), args.Error(1)
}
