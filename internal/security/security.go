// Package security holds the HTTP hardening middleware and the answer payload
// checks applied before scoring.
package security

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "user_id"

// SecurityConfig holds security configuration
type SecurityConfig struct {
	MaxBodyBytes    int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	MaxAnswers      int           `json:"max_answers" yaml:"max_answers"`
	MaxAnswerLength int           `json:"max_answer_length" yaml:"max_answer_length"`
	RequestTimeout  time.Duration `json:"request_timeout" yaml:"request_timeout"`
	EnableHSTS      bool          `json:"enable_hsts" yaml:"enable_hsts"`
}

// DefaultSecurityConfig returns secure defaults
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		MaxBodyBytes:    64 * 1024,
		MaxAnswers:      100,
		MaxAnswerLength: 200,
		RequestTimeout:  30 * time.Second,
	}
}

// SessionValidator resolves a bearer token to a user id. Errors that are not
// an *apperrors.AppError are reported as unauthorized.
type SessionValidator interface {
	ResolveSession(ctx context.Context, token string) (string, error)
}

// SecurityMiddleware provides the security middleware set
type SecurityMiddleware struct {
	config   SecurityConfig
	sessions SessionValidator
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(config SecurityConfig) *SecurityMiddleware {
	return &SecurityMiddleware{config: config}
}

// SetSessionValidator enables bearer token authentication
func (sm *SecurityMiddleware) SetSessionValidator(sessions SessionValidator) {
	sm.sessions = sessions
}

var (
	scriptPattern     = regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// maxNumericAnswer bounds slider and scale values well above any catalog max
const maxNumericAnswer = 1e6

var suspiciousPatterns = []string{`<script`, `</script>`, `javascript:`, `data:text/html`}

// ValidateInput checks a single free-text value
func (sm *SecurityMiddleware) ValidateInput(input string) error {
	if utf8.RuneCountInString(input) > sm.config.MaxAnswerLength {
		return fmt.Errorf("input exceeds maximum length of %d characters", sm.config.MaxAnswerLength)
	}

	if strings.Contains(input, "\x00") {
		return fmt.Errorf("input contains invalid characters")
	}

	if !utf8.ValidString(input) {
		return fmt.Errorf("input contains invalid UTF-8 encoding")
	}

	inputLower := strings.ToLower(input)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(inputLower, pattern) {
			return fmt.Errorf("input contains suspicious patterns")
		}
	}

	return nil
}

// SanitizeInput strips markup and collapses whitespace
func (sm *SecurityMiddleware) SanitizeInput(input string) string {
	input = scriptPattern.ReplaceAllString(input, "")
	input = htmlTagPattern.ReplaceAllString(input, "")
	input = whitespacePattern.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// ValidateAnswers checks an answer payload and returns a sanitized copy.
// Problems are reported per question id.
func (sm *SecurityMiddleware) ValidateAnswers(answers scoring.Answers) (scoring.Answers, error) {
	if len(answers) > sm.config.MaxAnswers {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("too many answers: %d (max %d)", len(answers), sm.config.MaxAnswers))
	}

	issues := make(map[string]string)
	clean := make(scoring.Answers, len(answers))

	for id, value := range answers {
		if !scoring.ValidQuestionID(id) {
			issues[id] = "invalid question id"
			continue
		}

		if n, ok := value.AsNumber(); ok && math.Abs(n) > maxNumericAnswer {
			issues[id] = fmt.Sprintf("numeric answer exceeds %g", float64(maxNumericAnswer))
			continue
		}

		text, ok := value.AsText()
		if !ok {
			clean[id] = value
			continue
		}

		if err := sm.ValidateInput(text); err != nil {
			issues[id] = err.Error()
			continue
		}
		clean[id] = scoring.Text(sm.SanitizeInput(text))
	}

	if len(issues) > 0 {
		return nil, apperrors.NewValidationErrorWithMap("invalid answers", issues)
	}

	return clean, nil
}

// SecurityHeaders adds security headers to responses. The swagger UI needs
// inline scripts, so it gets a relaxed policy.
func (sm *SecurityMiddleware) SecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

	if sm.config.EnableHSTS || c.Request.TLS != nil {
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}

	if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
		c.Header("Content-Security-Policy",
			"default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
	} else {
		c.Header("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'")
	}

	c.Next()
}

// ValidateContentType requires JSON bodies on write requests
func (sm *SecurityMiddleware) ValidateContentType(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		c.Next()
		return
	}

	contentType := c.GetHeader("Content-Type")
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "application/json") {
		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
			"error":    "unsupported content type",
			"category": apperrors.CategoryValidation,
		})
		return
	}

	c.Next()
}

// LimitBody caps request body size
func (sm *SecurityMiddleware) LimitBody(c *gin.Context) {
	if c.Request.Body != nil && sm.config.MaxBodyBytes > 0 {
		if c.Request.ContentLength > sm.config.MaxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":    "request body too large",
				"category": apperrors.CategoryValidation,
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sm.config.MaxBodyBytes)
	}

	c.Next()
}

// RequestTimeout enforces request timeout
func (sm *SecurityMiddleware) RequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), sm.config.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Timeout", strconv.Itoa(int(sm.config.RequestTimeout.Seconds())))

	c.Next()
}

// OptionalAuth sets UserIDKey when a valid bearer token is present. A
// malformed or expired token is rejected rather than ignored.
func (sm *SecurityMiddleware) OptionalAuth(c *gin.Context) {
	token, present := bearerToken(c)
	if !present || sm.sessions == nil {
		c.Next()
		return
	}

	userID, err := sm.sessions.ResolveSession(c.Request.Context(), token)
	if err != nil {
		var appErr *apperrors.AppError
		if !stderrors.As(err, &appErr) {
			appErr = apperrors.NewUnauthorizedError("invalid session token", err)
		}
		apperrors.Respond(c, appErr)
		return
	}

	c.Set(UserIDKey, userID)
	c.Next()
}

// RequireAuth rejects requests without a valid bearer token
func (sm *SecurityMiddleware) RequireAuth(c *gin.Context) {
	if _, present := bearerToken(c); !present {
		apperrors.Respond(c, apperrors.NewUnauthorizedError("missing session token", nil))
		return
	}

	sm.OptionalAuth(c)
}

// UserID returns the authenticated user id, or "" for anonymous requests
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", true
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
