package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type SubscriptionRepository interface {
	ListCertAlerts(ctx context.Context) ([]domain.CertAlertSubscription, error)
}

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) ListCertAlerts(ctx context.Context) ([]domain.CertAlertSubscription, error) {
	var subs []domain.CertAlertSubscription
	query := `
		SELECT id, gondola_id, email, frequency, threshold, created_at
		FROM cert_alert_subscriptions
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &subs, query); err != nil {
		return nil, err
	}
	return subs, nil
}
