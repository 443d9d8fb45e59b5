package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertFrequency string

const (
	FrequencyDaily   AlertFrequency = "daily"
	FrequencyWeekly  AlertFrequency = "weekly"
	FrequencyMonthly AlertFrequency = "monthly"
)

func (f AlertFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// DueOn reports whether a subscription with this frequency fires on the given
// calendar day. Weekly alerts go out on Mondays, monthly ones on the 1st.
func (f AlertFrequency) DueOn(day time.Time) bool {
	switch f {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return day.Weekday() == time.Monday
	case FrequencyMonthly:
		return day.Day() == 1
	default:
		return false
	}
}

type CertAlertSubscription struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	GondolaID uuid.UUID      `json:"gondola_id" db:"gondola_id"`
	Email     string         `json:"email" db:"email"`
	Frequency AlertFrequency `json:"frequency" db:"frequency"`
	Threshold int            `json:"threshold" db:"threshold"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
