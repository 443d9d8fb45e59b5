package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
)

const cacheKey = "gondola:dashboard:stats"

type Stats struct {
	domain.FleetSummary
	TotalGondolas int       `json:"total_gondolas"`
	GeneratedAt   time.Time `json:"generated_at"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	gondolaRepo  repository.GondolaRepository
	documentRepo repository.DocumentRepository
	projectRepo  repository.ProjectRepository
	redis        *redis.Client
	ttl          time.Duration
	logger       zerolog.Logger
}

func NewService(
	gondolaRepo repository.GondolaRepository,
	documentRepo repository.DocumentRepository,
	projectRepo repository.ProjectRepository,
	redis *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) Service {
	return &service{
		gondolaRepo:  gondolaRepo,
		documentRepo: documentRepo,
		projectRepo:  projectRepo,
		redis:        redis,
		ttl:          ttl,
		logger:       logger,
	}
}

// GetStats returns the fleet summary, served from Redis when a fresh copy is
// cached.
func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	gondolas, err := s.gondolaRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gondolas: %w", err)
	}

	docs, err := s.documentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	stats := &Stats{
		FleetSummary:  domain.SummarizeFleet(gondolas, docs, projects),
		TotalGondolas: len(gondolas),
		GeneratedAt:   time.Now().UTC(),
	}

	if s.redis != nil && s.ttl > 0 {
		if statsJSON, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, cacheKey, statsJSON, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache dashboard stats")
			}
		}
	}

	return stats, nil
}
