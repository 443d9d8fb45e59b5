package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("record not found")

type Repositories struct {
	User            UserRepository
	Gondola         GondolaRepository
	Project         ProjectRepository
	Document        DocumentRepository
	Subscription    SubscriptionRepository
	NotificationLog NotificationLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:            NewUserRepository(db),
		Gondola:         NewGondolaRepository(db),
		Project:         NewProjectRepository(db),
		Document:        NewDocumentRepository(db),
		Subscription:    NewSubscriptionRepository(db),
		NotificationLog: NewNotificationLogRepository(db),
	}
}
