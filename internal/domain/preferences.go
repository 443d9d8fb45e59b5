package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// UserPreferences holds the notification switches stored on a profile.
type UserPreferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	CertificateExpiry  bool `json:"certificateExpiry"`
	ProjectReminders   bool `json:"projectReminders"`
	ProjectUpdates     bool `json:"projectUpdates"`
	WeeklyReports      bool `json:"weeklyReports"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		EmailNotifications: true,
		PushNotifications:  false,
		CertificateExpiry:  true,
		ProjectReminders:   true,
		ProjectUpdates:     false,
		WeeklyReports:      false,
	}
}

// ParsePreferences merges stored preferences over the defaults. The stored
// value may be a JSON object, a JSON string that itself holds an object, or
// empty. Keys that are absent keep their default, as do keys whose value is
// not a boolean; those are reported in the returned error while every valid
// key is still applied. Input that is not an object yields the defaults.
func ParsePreferences(raw []byte) (UserPreferences, error) {
	prefs := DefaultPreferences()

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return prefs, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return DefaultPreferences(), fmt.Errorf("failed to decode preferences string: %w", err)
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return prefs, nil
		}
	}

	var stored map[string]json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		return DefaultPreferences(), fmt.Errorf("failed to decode preferences: %w", err)
	}

	var errs []error
	for key, target := range prefs.fields() {
		value, ok := stored[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		var enabled bool
		if err := json.Unmarshal(value, &enabled); err != nil {
			errs = append(errs, fmt.Errorf("preference %q: %w", key, err))
			continue
		}
		*target = enabled
	}

	return prefs, errors.Join(errs...)
}

func (p *UserPreferences) fields() map[string]*bool {
	return map[string]*bool{
		"emailNotifications": &p.EmailNotifications,
		"pushNotifications":  &p.PushNotifications,
		"certificateExpiry":  &p.CertificateExpiry,
		"projectReminders":   &p.ProjectReminders,
		"projectUpdates":     &p.ProjectUpdates,
		"weeklyReports":      &p.WeeklyReports,
	}
}

func (p UserPreferences) Enabled(category NotificationCategory) bool {
	switch category {
	case CategoryCertificateExpiry:
		return p.CertificateExpiry
	case CategoryProjectReminders:
		return p.ProjectReminders
	case CategoryProjectUpdates:
		return p.ProjectUpdates
	case CategoryWeeklyReports:
		return p.WeeklyReports
	default:
		return false
	}
}
