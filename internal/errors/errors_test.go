package errors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		category ErrorCategory
		status   int
		prefix   string
	}{
		{"validation", NewValidationError("bad answers", "q1"), CategoryValidation, http.StatusBadRequest, "[VALIDATION_ERROR]"},
		{"validation map", NewValidationErrorWithMap("invalid catalog", map[string]string{"a": "b"}), CategoryValidation, http.StatusBadRequest, "[VALIDATION_ERROR]"},
		{"unauthorized", NewUnauthorizedError("invalid token", nil), CategoryUnauthorized, http.StatusUnauthorized, "[UNAUTHORIZED]"},
		{"not found", NewNotFoundError("result", nil), CategoryNotFound, http.StatusNotFound, "[NOT_FOUND]"},
		{"timeout", NewTimeoutError("slow", nil), CategoryTimeout, http.StatusGatewayTimeout, "[TIMEOUT_ERROR]"},
		{"rate limit", NewRateLimitError("1s"), CategoryRateLimit, http.StatusTooManyRequests, "[RATE_LIMIT_EXCEEDED]"},
		{"storage", NewStorageError("insert result", fmt.Errorf("disk full")), CategoryStorage, http.StatusServiceUnavailable, "[STORAGE_ERROR]"},
		{"internal", NewInternalError("boom", nil), CategoryInternal, http.StatusInternalServerError, "[INTERNAL_ERROR]"},
		{"configuration", NewConfigurationError("missing secret", nil), CategoryConfiguration, http.StatusInternalServerError, "[CONFIGURATION_ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Contains(t, tt.err.Error(), tt.prefix)
		})
	}
}

func TestToAppError(t *testing.T) {
	assert.Nil(t, ToAppError(nil))

	original := NewValidationError("bad")
	wrapped := fmt.Errorf("handler: %w", original)
	assert.Same(t, original, ToAppError(wrapped))

	builder := errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("raw")
	assert.Equal(t, CategoryInternal, ToAppError(builder).Category)

	assert.Equal(t, CategoryTimeout, ToAppError(context.DeadlineExceeded).Category)
	assert.Equal(t, CategoryStorage, ToAppError(fmt.Errorf("database is locked")).Category)
	assert.Equal(t, CategoryInternal, ToAppError(fmt.Errorf("plain")).Category)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(NewStorageError("insert", nil)))
	assert.True(t, IsRetryableError(NewRateLimitError("1s")))
	assert.False(t, IsRetryableError(NewValidationError("bad")))
	assert.False(t, IsRetryableError(NewUnauthorizedError("nope", nil)))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "noop"))

	base := fmt.Errorf("base")
	err := WrapError(base, "saving %s", "result")
	assert.EqualError(t, err, "saving result: base")
	assert.ErrorIs(t, err, base)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(NewUnauthorizedError("missing token", nil))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"unauthorized"`)
}

func TestRecoveryHandler(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryHandler())
	r.GET("/panic", func(c *gin.Context) {
		panic("scoring exploded")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	require.NotPanics(t, func() { r.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"internal"`)
}

func TestSafeExecute(t *testing.T) {
	var recovered interface{}
	SafeExecute(func() { panic("x") }, func(r interface{}) { recovered = r })
	assert.Equal(t, "x", recovered)
}
