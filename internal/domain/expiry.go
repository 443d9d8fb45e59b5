package domain

import (
	"math"
	"time"
)

const DefaultExpiryThresholdDays = 30

type ExpiryStatus string

const (
	ExpiryValid    ExpiryStatus = "valid"
	ExpiryExpiring ExpiryStatus = "expiring"
	ExpiryExpired  ExpiryStatus = "expired"
	ExpiryUnknown  ExpiryStatus = "unknown"
)

// DaysToExpiry returns the number of whole days until expiry, rounded up.
func DaysToExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ClassifyExpiry derives the status of an expiry date relative to now.
// A document is expiring from the day it expires through thresholdDays ahead.
func ClassifyExpiry(expiry *time.Time, now time.Time, thresholdDays int) ExpiryStatus {
	if expiry == nil {
		return ExpiryUnknown
	}

	days := DaysToExpiry(*expiry, now)
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= thresholdDays:
		return ExpiryExpiring
	default:
		return ExpiryValid
	}
}

func NewDocumentStatus(doc Document, now time.Time, thresholdDays int) DocumentStatus {
	status := DocumentStatus{
		Document:     doc,
		ExpiryStatus: ClassifyExpiry(doc.Expiry, now, thresholdDays),
	}
	if doc.Expiry != nil {
		days := DaysToExpiry(*doc.Expiry, now)
		status.DaysToExpiry = &days
	}
	return status
}
