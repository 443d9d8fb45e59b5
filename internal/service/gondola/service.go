package gondola

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
)

var ErrGondolaNotFound = errors.New("gondola not found")

type CertificateReport struct {
	Gondola       domain.Gondola          `json:"gondola"`
	ThresholdDays int                     `json:"threshold_days"`
	Documents     []domain.DocumentStatus `json:"documents"`
}

type Service interface {
	Certificates(ctx context.Context, gondolaID uuid.UUID, thresholdDays int) (*CertificateReport, error)
}

type service struct {
	gondolaRepo  repository.GondolaRepository
	documentRepo repository.DocumentRepository
	now          func() time.Time
}

func NewService(gondolaRepo repository.GondolaRepository, documentRepo repository.DocumentRepository) Service {
	return &service{
		gondolaRepo:  gondolaRepo,
		documentRepo: documentRepo,
		now:          time.Now,
	}
}

// Certificates lists the certificate documents of a gondola with their
// derived expiry status. A non-positive threshold falls back to the default.
func (s *service) Certificates(ctx context.Context, gondolaID uuid.UUID, thresholdDays int) (*CertificateReport, error) {
	if thresholdDays <= 0 {
		thresholdDays = domain.DefaultExpiryThresholdDays
	}

	g, err := s.gondolaRepo.GetByID(ctx, gondolaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGondolaNotFound
		}
		return nil, fmt.Errorf("failed to get gondola: %w", err)
	}

	docs, err := s.documentRepo.ListByGondola(ctx, gondolaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	now := s.now()
	statuses := make([]domain.DocumentStatus, 0, len(docs))
	for _, d := range docs {
		if !d.IsCertificate() {
			continue
		}
		statuses = append(statuses, domain.NewDocumentStatus(d, now, thresholdDays))
	}

	return &CertificateReport{
		Gondola:       *g,
		ThresholdDays: thresholdDays,
		Documents:     statuses,
	}, nil
}
