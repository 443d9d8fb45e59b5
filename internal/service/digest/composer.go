// Package digest renders notification emails: the per-user digest assembled
// from category sections, and the certificate alert sent to subscribers.
package digest

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"gondola-rental/internal/domain"
)

const (
	DigestHeading = "Gondola Manager Notifications"
	DigestSubject = "Your Gondola Manager notification digest"

	dateLayout      = "Jan 2, 2006"
	timestampLayout = "Jan 2, 2006 3:04 PM MST"
)

// ErrEmptyDigest signals that no section was produced and nothing should be sent.
var ErrEmptyDigest = errors.New("digest has no sections")

//go:embed templates/*.html
var templateFS embed.FS

var (
	digestTemplate    = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/digest.html"))
	certAlertTemplate = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/cert_alert.html"))
)

// Compose renders sections in order under a single heading, separated by
// horizontal rules.
func Compose(sections []domain.DigestSection) (string, error) {
	if len(sections) == 0 {
		return "", ErrEmptyDigest
	}

	data := struct {
		Heading  string
		Sections []domain.DigestSection
	}{
		Heading:  DigestHeading,
		Sections: sections,
	}

	var body bytes.Buffer
	if err := digestTemplate.ExecuteTemplate(&body, "layout", data); err != nil {
		return "", fmt.Errorf("failed to execute digest template: %w", err)
	}
	return body.String(), nil
}

// ComposeCertAlert renders the subscriber email for one gondola and its
// expiring documents. It returns ErrEmptyDigest when docs is empty.
func ComposeCertAlert(gondola domain.Gondola, docs []domain.DocumentStatus, thresholdDays int, loc *time.Location) (subject, html string, err error) {
	if len(docs) == 0 {
		return "", "", ErrEmptyDigest
	}

	items := make([]string, 0, len(docs))
	for _, d := range docs {
		line := fmt.Sprintf("%s (%s) expires on %s", d.Title, d.TypeOrCategory(), formatDate(*d.Expiry, loc))
		if d.DaysToExpiry != nil {
			line += fmt.Sprintf(" (%s)", daysLabel(*d.DaysToExpiry))
		}
		items = append(items, line)
	}

	data := struct {
		Heading   string
		Serial    string
		Model     string
		Location  string
		Status    string
		Threshold int
		Documents []string
	}{
		Heading:   "Certificate Expiry Alert",
		Serial:    gondola.SerialNumber,
		Model:     valueOr(gondola.Model, "N/A"),
		Location:  valueOr(gondola.Location, "N/A"),
		Status:    gondola.Status,
		Threshold: thresholdDays,
		Documents: items,
	}

	var body bytes.Buffer
	if err := certAlertTemplate.ExecuteTemplate(&body, "layout", data); err != nil {
		return "", "", fmt.Errorf("failed to execute cert alert template: %w", err)
	}

	subject = fmt.Sprintf("Certificate expiry alert: gondola %s", gondola.SerialNumber)
	return subject, body.String(), nil
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

func formatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timestampLayout)
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
