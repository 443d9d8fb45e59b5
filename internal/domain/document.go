package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const certificateKeyword = "certificate"

type Document struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	GondolaID *uuid.UUID `json:"gondola_id,omitempty" db:"gondola_id"`
	Title     string     `json:"title" db:"title"`
	Category  *string    `json:"category,omitempty" db:"category"`
	Type      *string    `json:"type,omitempty" db:"type"`
	Status    *string    `json:"status,omitempty" db:"status"`
	Expiry    *time.Time `json:"expiry,omitempty" db:"expiry"`
	FileURL   *string    `json:"file_url,omitempty" db:"file_url"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// CertificateDocument is a document joined with the serial number of the
// gondola it belongs to.
type CertificateDocument struct {
	Document
	GondolaSerial *string `json:"gondola_serial,omitempty" db:"gondola_serial"`
}

func (d CertificateDocument) SerialOrUnknown() string {
	if d.GondolaSerial != nil && *d.GondolaSerial != "" {
		return *d.GondolaSerial
	}
	return "unknown gondola"
}

// IsCertificate reports whether category, type or title mention a certificate.
func (d Document) IsCertificate() bool {
	for _, field := range []*string{d.Category, d.Type, &d.Title} {
		if field != nil && strings.Contains(strings.ToLower(*field), certificateKeyword) {
			return true
		}
	}
	return false
}

func (d Document) StatusContains(fragment string) bool {
	if d.Status == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*d.Status), strings.ToLower(fragment))
}

func (d Document) TypeOrCategory() string {
	if d.Type != nil && *d.Type != "" {
		return *d.Type
	}
	if d.Category != nil && *d.Category != "" {
		return *d.Category
	}
	return "Document"
}

// DocumentStatus is a document with its derived expiry status.
type DocumentStatus struct {
	Document
	ExpiryStatus ExpiryStatus `json:"expiry_status"`
	DaysToExpiry *int         `json:"days_to_expiry,omitempty"`
}
