// Package results stores submitted results and derives population
// statistics from the verified ones.
package results

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/database"
	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/resilience"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// DefaultStatsTTL is how long computed stats are served from memory
const DefaultStatsTTL = 5 * time.Minute

// Store is the persistence the service needs. *database.Repository
// satisfies it.
type Store interface {
	InsertResult(ctx context.Context, rec *database.ResultRecord) error
	GetResult(ctx context.Context, id string) (*database.ResultRecord, error)
	VerifiedRank(ctx context.Context, score int) (total, below int, err error)
	VerifiedScores(ctx context.Context) ([]database.ScoreRow, error)
}

// Submission is returned to the client after a result is stored
type Submission struct {
	ID              string `json:"id"`
	Percentile      int    `json:"percentile"`
	IsVerified      bool   `json:"isVerified"`
	PopulationBased bool   `json:"populationBased"`
}

// SharedResult is the public view of a stored result. Answers and the owning
// user are left out.
type SharedResult struct {
	ID             string                  `json:"id"`
	OverallScore   int                     `json:"overallScore"`
	Percentile     int                     `json:"percentile"`
	Archetype      scoring.Archetype       `json:"archetype"`
	CategoryScores []scoring.CategoryScore `json:"categoryScores"`
	IsVerified     bool                    `json:"isVerified"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// Service handles result submissions and statistics
type Service struct {
	store   Store
	cache   *StatsCache
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
}

// NewService creates a service with a default stats cache
func NewService(store Store) *Service {
	return NewServiceWithCache(store, NewStatsCache(DefaultStatsTTL))
}

// NewServiceWithCache creates a service using the provided stats cache
func NewServiceWithCache(store Store, cache *StatsCache) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{IsFailure: isStoreFailure}),
		retry:   resilience.StorageRetryConfig(),
	}
}

// Submit persists result and places it among verified results. A non-empty
// userID marks the submission as verified. When no population percentile can
// be computed, the provisional percentile is returned.
func (s *Service) Submit(ctx context.Context, result scoring.Result, userID, clientHash string) (Submission, error) {
	result.Percentile = scoring.ClampPercentile(result.OverallScore)
	rec := database.NewResultRecord(result, userID, clientHash)
	if err := rec.Validate(); err != nil {
		return Submission{}, apperrors.NewValidationError("result cannot be stored", err.Error())
	}

	err := s.breaker.Call(func() error {
		return resilience.RetryWithConfig(ctx, s.retry, func() error {
			return s.store.InsertResult(ctx, rec)
		})
	})
	if errors.Is(err, database.ErrInvalidRecord) {
		return Submission{}, apperrors.NewValidationError("result cannot be stored", err.Error())
	}
	if err != nil {
		return Submission{}, apperrors.NewStorageError("insert result", err)
	}

	submission := Submission{
		ID:         rec.ID,
		Percentile: rec.Percentile,
		IsVerified: rec.IsVerified,
	}

	var total, below int
	err = s.breaker.Call(func() error {
		var rankErr error
		total, below, rankErr = s.store.VerifiedRank(ctx, rec.OverallScore)
		return rankErr
	})
	if err != nil {
		slog.Warn("Population percentile unavailable", "error", err, "result_id", rec.ID)
	} else if p, ok := PopulationPercentile(total, below); ok {
		submission.Percentile = p
		submission.PopulationBased = true
	}

	if rec.IsVerified {
		s.cache.Invalidate()
	}

	return submission, nil
}

// Get loads the shared view of the result stored under id
func (s *Service) Get(ctx context.Context, id string) (*SharedResult, error) {
	var rec *database.ResultRecord
	err := s.breaker.Call(func() error {
		var getErr error
		rec, getErr = s.store.GetResult(ctx, id)
		return getErr
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("result", err)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("load result", err)
	}

	return &SharedResult{
		ID:             rec.ID,
		OverallScore:   rec.OverallScore,
		Percentile:     rec.Percentile,
		Archetype:      rec.Archetype,
		CategoryScores: rec.CategoryScores,
		IsVerified:     rec.IsVerified,
		CreatedAt:      rec.CreatedAt,
	}, nil
}

// Stats returns statistics over verified results, served from the cache when
// fresh.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if stats, ok := s.cache.Get(); ok {
		return stats, nil
	}

	stats, err := s.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(stats)
	return stats, nil
}

func (s *Service) loadStats(ctx context.Context) (*Stats, error) {
	var rows []database.ScoreRow
	err := s.breaker.Call(func() error {
		var queryErr error
		rows, queryErr = s.store.VerifiedScores(ctx)
		return queryErr
	})
	if err != nil {
		return nil, apperrors.NewStorageError("load verified scores", err)
	}

	stats := ComputeStats(rows)
	return &stats, nil
}

// isStoreFailure keeps bad records, missing rows and cancelled requests from
// opening the breaker.
func isStoreFailure(err error) bool {
	return !errors.Is(err, database.ErrInvalidRecord) &&
		!errors.Is(err, database.ErrNotFound) &&
		!errors.Is(err, context.Canceled)
}

// Cache exposes the stats cache for warming and refresh
func (s *Service) Cache() *StatsCache {
	return s.cache
}

// GetHealthStats reports cache and breaker state
func (s *Service) GetHealthStats() map[string]interface{} {
	return map[string]interface{}{
		"stats_cache":     s.cache.GetStats(),
		"circuit_breaker": s.breaker.Stats(),
	}
}
