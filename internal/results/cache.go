package results

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/cache"
	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
)

const statsCacheKey = "stats:verified"

// StatsCache keeps the last computed Stats in memory
type StatsCache struct {
	cache *cache.Cache
}

// NewStatsCache creates a stats cache whose entries live for ttl
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{cache: cache.NewCache(ttl)}
}

// Get returns the cached stats, if present and fresh
func (sc *StatsCache) Get() (*Stats, bool) {
	data, found := sc.cache.Get(statsCacheKey)
	if !found {
		return nil, false
	}

	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		slog.Error("Failed to unmarshal cached stats", "error", err, "key", statsCacheKey)
		return nil, false
	}

	return &stats, true
}

// Set caches stats
func (sc *StatsCache) Set(stats *Stats) {
	data, err := json.Marshal(stats)
	if err != nil {
		slog.Error("Failed to marshal stats for cache", "error", err)
		return
	}

	sc.cache.Set(statsCacheKey, data)
	slog.Debug("Stats cached", "total_verified", stats.TotalVerified)
}

// Invalidate drops the cached stats so the next read recomputes them
func (sc *StatsCache) Invalidate() {
	sc.cache.Delete(statsCacheKey)
}

// Close stops the underlying cache's cleanup loop
func (sc *StatsCache) Close() {
	sc.cache.Close()
}

// GetStats returns cache statistics
func (sc *StatsCache) GetStats() map[string]interface{} {
	return sc.cache.Stats()
}

// WarmCache recomputes stats from the store and caches them
func (sc *StatsCache) WarmCache(ctx context.Context, service *Service) {
	stats, err := service.loadStats(ctx)
	if err != nil {
		slog.Warn("Failed to warm stats cache", "error", err)
		return
	}
	sc.Set(stats)
	slog.Info("Stats cache warmed", "total_verified", stats.TotalVerified)
}

// AutoRefresh rewarms the cache every interval until ctx is done
func (sc *StatsCache) AutoRefresh(ctx context.Context, service *Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.Debug("Auto-refreshing stats cache")
			apperrors.SafeExecute(func() { sc.WarmCache(ctx, service) }, nil)
		}
	}
}
