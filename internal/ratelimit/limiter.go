// Package ratelimit throttles API clients with a Redis-backed limiter and an
// in-memory token bucket fallback when Redis is absent or failing.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/monitoring"
)

// Config holds rate limiter configuration. IPLimit is requests per minute per
// IP; SubmitLimit is result submissions per hour per client.
type Config struct {
	IPLimit         int           `yaml:"ip_limit_per_min"`
	SubmitLimit     int           `yaml:"submit_limit_per_hour"`
	BurstMultiplier int           `yaml:"burst_multiplier"`
	EnableFallback  bool          `yaml:"enable_fallback"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		IPLimit:         60,
		SubmitLimit:     10,
		BurstMultiplier: 1,
		EnableFallback:  true,
		CleanupInterval: time.Hour,
	}
}

// Rate is a limit of Limit events per Period
type Rate struct {
	Limit  int
	Period time.Duration
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

const maxFallbackLimiters = 10000

// RateLimiter provides distributed rate limiting with Redis and in-memory fallback
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	config       Config
	metrics      *monitoring.Metrics

	fallbackLimiters map[string]*rate.Limiter
	fallbackMutex    sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter. Call Close to stop its cleanup loop.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics *monitoring.Metrics) *RateLimiter {
	if config.BurstMultiplier <= 0 {
		config.BurstMultiplier = 1
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = time.Hour
	}
	if redisClient == nil {
		redisClient = &RedisClient{}
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		config:           config,
		metrics:          metrics,
		fallbackLimiters: make(map[string]*rate.Limiter),
		stop:             make(chan struct{}),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
		slog.Info("Redis rate limiter initialized")
	} else {
		slog.Warn("Redis unavailable, using in-memory rate limiting only")
	}

	go rl.cleanupFallbackLimiters()

	return rl
}

// AllowIP checks the per-minute request limit for an IP address
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) (*Result, error) {
	return rl.Allow(ctx, "ratelimit:ip:"+ip, Rate{Limit: rl.config.IPLimit, Period: time.Minute})
}

// AllowSubmission checks the hourly result submission limit for a client
func (rl *RateLimiter) AllowSubmission(ctx context.Context, clientHash string) (*Result, error) {
	return rl.Allow(ctx, "ratelimit:submit:"+clientHash, Rate{Limit: rl.config.SubmitLimit, Period: time.Hour})
}

// Allow checks key against limit, preferring Redis and falling back to memory
func (rl *RateLimiter) Allow(ctx context.Context, key string, limit Rate) (*Result, error) {
	if limit.Limit <= 0 {
		return &Result{Allowed: true}, nil
	}

	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		result, err := rl.allowRedis(ctx, key, limit)
		if err == nil {
			return result, nil
		}

		slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
		if rl.metrics != nil {
			rl.metrics.IncrementRateLimitRedisError()
		}
		if !rl.config.EnableFallback {
			return nil, err
		}
	}

	if rl.metrics != nil {
		rl.metrics.IncrementRateLimitFallback()
	}
	return rl.allowFallback(key, limit), nil
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string, limit Rate) (*Result, error) {
	res, err := rl.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit.Limit,
		Burst:  limit.Limit * rl.config.BurstMultiplier,
		Period: limit.Period,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      limit.Limit,
		Remaining:  res.Remaining,
		ResetAt:    time.Now().Add(res.ResetAfter),
		RetryAfter: res.RetryAfter,
	}, nil
}

// allowFallback uses a per-key token bucket refilled at Limit/Period
func (rl *RateLimiter) allowFallback(key string, limit Rate) *Result {
	rl.fallbackMutex.Lock()
	limiter, exists := rl.fallbackLimiters[key]
	if !exists {
		every := rate.Every(limit.Period / time.Duration(limit.Limit))
		limiter = rate.NewLimiter(every, limit.Limit*rl.config.BurstMultiplier)
		rl.fallbackLimiters[key] = limiter
	}
	rl.fallbackMutex.Unlock()

	now := time.Now()
	allowed := limiter.AllowN(now, 1)

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   allowed,
		Limit:     limit.Limit,
		Remaining: remaining,
		ResetAt:   now.Add(limit.Period),
	}

	if !allowed {
		result.RetryAfter = limit.Period / time.Duration(limit.Limit)
		result.ResetAt = now.Add(result.RetryAfter)
	}

	return result
}

func (rl *RateLimiter) cleanupFallbackLimiters() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.fallbackMutex.Lock()
			if len(rl.fallbackLimiters) > maxFallbackLimiters {
				slog.Info("Cleaning up fallback rate limiters", "count", len(rl.fallbackLimiters))
				rl.fallbackLimiters = make(map[string]*rate.Limiter)
			}
			rl.fallbackMutex.Unlock()
		}
	}
}

// Reset clears the state held for key
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	rl.fallbackMutex.Lock()
	delete(rl.fallbackLimiters, key)
	rl.fallbackMutex.Unlock()

	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		return rl.redisLimiter.Reset(ctx, key)
	}
	return nil
}

// Close stops the cleanup loop
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	return map[string]interface{}{
		"redis_enabled":     rl.redisClient.IsEnabled(),
		"fallback_limiters": fallbackCount,
		"redis_pool":        rl.redisClient.GetPoolStats(),
	}
}
