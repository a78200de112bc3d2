package ratelimit

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
)

// ClientKeyFunc derives the submission rate limit key for a request
type ClientKeyFunc func(c *gin.Context) string

// IPRateLimitMiddleware creates middleware for IP-based rate limiting
func (rl *RateLimiter) IPRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		result, err := rl.AllowIP(c.Request.Context(), ip)
		if err != nil {
			// never block on limiter failure
			slog.Error("Rate limit check failed", "ip", ip, "error", err)
			c.Next()
			return
		}

		writeHeaders(c, "X-RateLimit", result)

		if !result.Allowed {
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitIPBlock()
			}
			reject(c, result)
			return
		}

		c.Next()
	}
}

// SubmissionRateLimitMiddleware limits result submissions per client key
func (rl *RateLimiter) SubmissionRateLimitMiddleware(keyFn ClientKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)

		result, err := rl.AllowSubmission(c.Request.Context(), key)
		if err != nil {
			slog.Error("Submission rate limit check failed", "error", err)
			c.Next()
			return
		}

		writeHeaders(c, "X-RateLimit-Submit", result)

		if !result.Allowed {
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitIPBlock()
			}
			reject(c, result)
			return
		}

		c.Next()
	}
}

func writeHeaders(c *gin.Context, prefix string, result *Result) {
	c.Header(prefix+"-Limit", strconv.Itoa(result.Limit))
	c.Header(prefix+"-Remaining", strconv.Itoa(result.Remaining))
	c.Header(prefix+"-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func reject(c *gin.Context, result *Result) {
	seconds := int(result.RetryAfter.Round(time.Second).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	c.Header("Retry-After", strconv.Itoa(seconds))
	apperrors.Respond(c, apperrors.NewRateLimitError(result.RetryAfter.String()))
}
