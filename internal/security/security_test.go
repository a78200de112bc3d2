package security

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSessions map[string]string

func (s stubSessions) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "down" {
		return "", apperrors.NewStorageError("lookup session user", errors.New("database is locked"))
	}
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("token is expired")
}

func TestSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	assert.Equal(t, int64(64*1024), config.MaxBodyBytes)
	assert.Equal(t, 100, config.MaxAnswers)
	assert.Equal(t, 200, config.MaxAnswerLength)
	assert.Equal(t, 30*time.Second, config.RequestTimeout)
}

func TestValidateInput(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())

	tests := []struct {
		name     string
		input    string
		errorMsg string
	}{
		{"option text", "Never - I always monitor", ""},
		{"apostrophe", "I'm just learning", ""},
		{"too long", strings.Repeat("a", 201), "input exceeds maximum length"},
		{"null bytes", "yes\x00no", "input contains invalid characters"},
		{"invalid UTF-8", "yes\xff\xfe", "input contains invalid UTF-8 encoding"},
		{"script", "<script>alert(1)</script>", "input contains suspicious patterns"},
		{"javascript url", "JavaScript:alert(1)", "input contains suspicious patterns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sm.ValidateInput(tt.input)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())

	assert.Equal(t, "Already have", sm.SanitizeInput("  Already   have "))
	assert.Equal(t, "bold text", sm.SanitizeInput("<b>bold</b> text"))
	assert.Equal(t, "yes", sm.SanitizeInput("<SCRIPT src=x>bad()</SCRIPT>yes"))
}

func TestValidateAnswers(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())

	t.Run("sanitizes text and keeps other kinds", func(t *testing.T) {
		clean, err := sm.ValidateAnswers(scoring.Answers{
			"email_access":   scoring.Text("  Already have "),
			"terminal_ai":    scoring.Bool(true),
			"ai_tools_count": scoring.Number(12),
		})
		require.NoError(t, err)
		assert.True(t, clean["email_access"].Equal(scoring.Text("Already have")))
		assert.True(t, clean["terminal_ai"].Equal(scoring.Bool(true)))
		assert.True(t, clean["ai_tools_count"].Equal(scoring.Number(12)))
	})

	t.Run("reports issues per question", func(t *testing.T) {
		_, err := sm.ValidateAnswers(scoring.Answers{
			"Bad-ID":       scoring.Bool(true),
			"email_access": scoring.Text(strings.Repeat("x", 300)),
		})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
		assert.Contains(t, appErr.Fields, "Bad-ID")
		assert.Contains(t, appErr.Fields, "email_access")
	})

	t.Run("numeric answers are bounded", func(t *testing.T) {
		_, err := sm.ValidateAnswers(scoring.Answers{
			"ai_tools_count": scoring.Number(1e300),
			"hours_saved":    scoring.Text("-2e7"),
			"comfort_level":  scoring.Number(5),
		})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Fields, "ai_tools_count")
		assert.Contains(t, appErr.Fields, "hours_saved")
		assert.NotContains(t, appErr.Fields, "comfort_level")
	})

	t.Run("too many answers", func(t *testing.T) {
		config := DefaultSecurityConfig()
		config.MaxAnswers = 1
		_, err := NewSecurityMiddleware(config).ValidateAnswers(scoring.Answers{
			"a": scoring.Bool(true),
			"b": scoring.Bool(true),
		})
		assert.Error(t, err)
	})
}

func TestSecurityHeaders(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())

	r := gin.New()
	r.Use(sm.SecurityHeaders)
	r.GET("/api/stats", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	headers := w.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Contains(t, headers.Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Empty(t, headers.Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "'unsafe-inline'")
}

func TestValidateContentType(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())

	r := gin.New()
	r.Use(sm.ValidateContentType)
	r.POST("/api/results/compute", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/questions", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		want        int
	}{
		{"json", http.MethodPost, "/api/results/compute", "application/json; charset=utf-8", http.StatusOK},
		{"no content type", http.MethodPost, "/api/results/compute", "", http.StatusOK},
		{"plain text", http.MethodPost, "/api/results/compute", "text/plain", http.StatusUnsupportedMediaType},
		{"form", http.MethodPost, "/api/results/compute", "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"get ignores header", http.MethodGet, "/api/questions", "text/plain", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(`{"answers":{}}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLimitBody(t *testing.T) {
	config := DefaultSecurityConfig()
	config.MaxBodyBytes = 16
	sm := NewSecurityMiddleware(config)

	r := gin.New()
	r.Use(sm.LimitBody)
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestTimeout(t *testing.T) {
	config := DefaultSecurityConfig()
	config.RequestTimeout = 2 * time.Second
	sm := NewSecurityMiddleware(config)

	r := gin.New()
	r.Use(sm.RequestTimeout)
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "2", w.Header().Get("X-Timeout"))
}

func TestAuth(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig())
	sm.SetSessionValidator(stubSessions{"good": "user-1"})

	r := gin.New()
	handler := func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) }
	r.POST("/optional", sm.OptionalAuth, handler)
	r.DELETE("/required", sm.RequireAuth, handler)

	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantCode   int
		wantBody   string
	}{
		{"anonymous", http.MethodPost, "/optional", "", http.StatusOK, ""},
		{"valid token", http.MethodPost, "/optional", "Bearer good", http.StatusOK, "user-1"},
		{"lowercase scheme", http.MethodPost, "/optional", "bearer good", http.StatusOK, "user-1"},
		{"invalid token", http.MethodPost, "/optional", "Bearer bad", http.StatusUnauthorized, `"category":"unauthorized"`},
		{"wrong scheme", http.MethodPost, "/optional", "Basic abc", http.StatusUnauthorized, ""},
		{"required missing", http.MethodDelete, "/required", "", http.StatusUnauthorized, "missing session token"},
		{"required valid", http.MethodDelete, "/required", "Bearer good", http.StatusOK, "user-1"},
		{"lookup failure is not unauthorized", http.MethodPost, "/optional", "Bearer down", http.StatusServiceUnavailable, `"category":"storage"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
