package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gondola-rental/internal/domain"
)

type logKey struct {
	userID   uuid.UUID
	category domain.NotificationCategory
}

// MemoryNotificationLogs keeps notification log rows in a map keyed by
// (user, category), matching the unique constraint of the real table.
type MemoryNotificationLogs struct {
	mu      sync.Mutex
	rows    map[logKey]domain.NotificationLog
	Upserts int
}

func NewMemoryNotificationLogs() *MemoryNotificationLogs {
	return &MemoryNotificationLogs{rows: make(map[logKey]domain.NotificationLog)}
}

func (s *MemoryNotificationLogs) GetLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[logKey{userID, category}]
	if !ok || row.LastSent == nil {
		return nil, nil
	}
	t := *row.LastSent
	return &t, nil
}

func (s *MemoryNotificationLogs) UpsertLastSent(ctx context.Context, userID uuid.UUID, category domain.NotificationCategory, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := logKey{userID, category}
	row, ok := s.rows[key]
	if !ok {
		row = domain.NotificationLog{UserID: userID, NotificationType: category, CreatedAt: sentAt}
	}
	t := sentAt
	row.LastSent = &t
	row.UpdatedAt = sentAt
	s.rows[key] = row
	s.Upserts++
	return nil
}

func (s *MemoryNotificationLogs) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.NotificationLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []domain.NotificationLog
	for key, row := range s.rows {
		if key.userID == userID {
			logs = append(logs, row)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].NotificationType < logs[j].NotificationType
	})
	return logs, nil
}

// Len returns the number of stored rows.
func (s *MemoryNotificationLogs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
