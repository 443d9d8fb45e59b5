package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationCategory string

const (
	CategoryCertificateExpiry NotificationCategory = "certificateExpiry"
	CategoryProjectReminders  NotificationCategory = "projectReminders"
	CategoryProjectUpdates    NotificationCategory = "projectUpdates"
	CategoryWeeklyReports     NotificationCategory = "weeklyReports"
)

// DigestCategories is the fixed order in which categories are evaluated and
// rendered in a digest.
var DigestCategories = []NotificationCategory{
	CategoryCertificateExpiry,
	CategoryProjectReminders,
	CategoryProjectUpdates,
	CategoryWeeklyReports,
}

func (c NotificationCategory) IsValid() bool {
	switch c {
	case CategoryCertificateExpiry, CategoryProjectReminders, CategoryProjectUpdates, CategoryWeeklyReports:
		return true
	default:
		return false
	}
}

func (c NotificationCategory) Title() string {
	switch c {
	case CategoryCertificateExpiry:
		return "Certificate Expiry Alerts"
	case CategoryProjectReminders:
		return "Project Reminders"
	case CategoryProjectUpdates:
		return "Project Updates"
	case CategoryWeeklyReports:
		return "Weekly Report"
	default:
		return string(c)
	}
}

type NotificationLog struct {
	UserID           uuid.UUID            `json:"user_id" db:"user_id"`
	NotificationType NotificationCategory `json:"notification_type" db:"notification_type"`
	LastSent         *time.Time           `json:"last_sent" db:"last_sent"`
	CreatedAt        time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at" db:"updated_at"`
}

// DigestSection is one rendered block of a digest email.
type DigestSection struct {
	Category NotificationCategory
	Title    string
	Lines    []string
	Items    []string
	Ordered  bool
}
