package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/service/dashboard"
	"gondola-rental/internal/service/gondola"
	"gondola-rental/internal/service/notification"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreferences), args.Error(1)
}

func (m *NotificationService) ListLogs(ctx context.Context, userID uuid.UUID) ([]notification.CategoryState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.CategoryState), args.Error(1)
}

type GondolaService struct {
	mock.Mock
}

func (m *GondolaService) Certificates(ctx context.Context, gondolaID uuid.UUID, thresholdDays int) (*gondola.CertificateReport, error) {
	args := m.Called(ctx, gondolaID, thresholdDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gondola.CertificateReport), args.Error(1)
}

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}

type RunExecutor struct {
	mock.Mock
}

func (m *RunExecutor) Execute(ctx context.Context, name domain.JobName) (*domain.RunReport, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunReport), args.Error(1)
}

func (m *RunExecutor) Latest(name domain.JobName) (*domain.RunReport, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.RunReport), args.Bool(1)
}
