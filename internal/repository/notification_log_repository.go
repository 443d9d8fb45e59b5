package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gondola-rental/internal/domain"
)

type NotificationLogRepository interface {
	GetLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory) (*time.Time, error)
	UpsertLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, sentAt time.Time) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NotificationLog, error)
}

type notificationLogRepository struct {
	db *sqlx.DB
}

func NewNotificationLogRepository(db *sqlx.DB) NotificationLogRepository {
	return &notificationLogRepository{db: db}
}

// GetLastSent returns nil when the pair has never been recorded.
func (r *notificationLogRepository) GetLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory) (*time.Time, error) {
	var lastSent sql.NullTime
	query := `
		SELECT last_sent FROM user_notification_logs
		WHERE user_id = $1 AND notification_type = $2`

	err := r.db.GetContext(ctx, &lastSent, query, userID, category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !lastSent.Valid {
		return nil, nil
	}
	return &lastSent.Time, nil
}

func (r *notificationLogRepository) UpsertLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, sentAt time.Time) error {
	query := `
		INSERT INTO user_notification_logs (user_id, notification_type, last_sent, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, notification_type) DO UPDATE SET
			last_sent = EXCLUDED.last_sent,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, userID, category, sentAt)
	return err
}

func (r *notificationLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NotificationLog, error) {
	var logs []domain.NotificationLog
	query := `
		SELECT user_id, notification_type, last_sent, created_at, updated_at
		FROM user_notification_logs
		WHERE user_id = $1
		ORDER BY notification_type ASC`

	if err := r.db.SelectContext(ctx, &logs, query, userID); err != nil {
		return nil, err
	}
	return logs, nil
}
