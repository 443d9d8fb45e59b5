package handler

import (
	"context"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/service"
)

// RunExecutor is the part of batch.Executor the run endpoints need.
type RunExecutor interface {
	Execute(ctx context.Context, name domain.JobName) (*domain.RunReport, error)
	Latest(name domain.JobName) (*domain.RunReport, bool)
}

type Handlers struct {
	Run          *RunHandler
	Gondola      *GondolaHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Run:          NewRunHandler(services.Executor),
		Gondola:      NewGondolaHandler(services.Gondola),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}
