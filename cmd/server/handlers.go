package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/privacy"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/security"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/share"
)

const healthCheckTimeout = 2 * time.Second

type answersRequest struct {
	Answers scoring.Answers `json:"answers"`
}

// submitRequest mirrors a computed Result. Only the answers are trusted;
// the score fields are recomputed server side.
type submitRequest struct {
	Answers      scoring.Answers   `json:"answers"`
	OverallScore *int              `json:"overallScore,omitempty"`
	Percentile   *int              `json:"percentile,omitempty"`
	Archetype    scoring.Archetype `json:"archetype,omitempty"`
}

type questionsResponse struct {
	Questions []scoring.Question `json:"questions"`
	Total     int                `json:"total"`
}

type nextResponse struct {
	Complete bool              `json:"complete"`
	Question *scoring.Question `json:"question,omitempty"`
	Position int               `json:"position,omitempty"`
	Progress catalog.Progress  `json:"progress"`
}

type computeResponse struct {
	scoring.Result
	Profile    scoring.ArchetypeProfile `json:"profile"`
	Share      share.Links              `json:"share"`
	TopPercent int                      `json:"topPercent"`
}

// errorResponse documents the body written by errors.Respond
type errorResponse struct {
	Error     string            `json:"error"`
	Category  string            `json:"category"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// handleHealth godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (a *app) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	dbStatus := "ok"
	if err := a.db.Health(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		dbStatus = "unavailable"
		status = http.StatusServiceUnavailable
	}

	redisStatus := "disabled"
	if a.redis.IsEnabled() {
		redisStatus = "ok"
		if err := a.redis.HealthCheck(ctx); err != nil {
			// the limiter falls back to memory, so this only degrades
			redisStatus = "unavailable"
		}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"timestamp":  time.Now().Format(time.RFC3339),
		"version":    version,
		"questions":  len(a.questions),
		"database":   gin.H{"status": dbStatus, "pool": a.db.GetPoolStats()},
		"redis":      gin.H{"status": redisStatus, "pool": a.redis.GetPoolStats()},
		"results":    a.results.GetHealthStats(),
		"rate_limit": a.limiter.GetStats(),
		"metrics":    a.metrics.GetStats(),
	})
}

func (a *app) handleMetrics(c *gin.Context) {
	stats := a.metrics.GetStats()
	stats["response_cache"] = a.respCache.Stats()
	stats["compression"] = a.compress.Stats()
	c.JSON(http.StatusOK, stats)
}

// handleQuestions godoc
// @Summary List the question catalog
// @Tags quiz
// @Produce json
// @Param answers query string false "JSON answers; when given only active questions are returned"
// @Param category query string false "Category filter"
// @Success 200 {object} questionsResponse
// @Failure 400 {object} errorResponse
// @Router /api/questions [get]
func (a *app) handleQuestions(c *gin.Context) {
	questions := a.questions

	if raw := c.Query("answers"); raw != "" {
		var answers scoring.Answers
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			errors.Respond(c, errors.NewValidationError("answers must be a JSON object", err.Error()))
			return
		}
		questions = scoring.ActiveQuestions(questions, answers)
	}

	if raw := c.Query("category"); raw != "" {
		category, err := scoring.ParseCategory(raw)
		if err != nil {
			errors.Respond(c, errors.NewValidationError("unknown category", raw))
			return
		}
		filtered := make([]scoring.Question, 0, len(questions))
		for _, q := range questions {
			if q.Category == category {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	c.JSON(http.StatusOK, questionsResponse{Questions: questions, Total: len(questions)})
}

// handleNextQuestion godoc
// @Summary Next unanswered question
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body answersRequest true "Answers so far"
// @Success 200 {object} nextResponse
// @Failure 400 {object} errorResponse
// @Router /api/quiz/next [post]
func (a *app) handleNextQuestion(c *gin.Context) {
	answers, ok := a.bindAnswers(c)
	if !ok {
		return
	}

	next, progress, found := catalog.Next(a.questions, answers)
	resp := nextResponse{Complete: !found, Progress: progress}
	if found {
		resp.Question = &next
		resp.Position, _ = catalog.Position(a.questions, answers, next.ID)
	}

	c.JSON(http.StatusOK, resp)
}

// handleCompute godoc
// @Summary Score answers
// @Tags results
// @Accept json
// @Produce json
// @Param request body answersRequest true "Answers"
// @Success 200 {object} computeResponse
// @Failure 400 {object} errorResponse
// @Router /api/results/compute [post]
func (a *app) handleCompute(c *gin.Context) {
	start := time.Now()

	answers, ok := a.bindAnswers(c)
	if !ok {
		return
	}

	result := scoring.ComputeResult(answers, a.questions)
	profile, _ := scoring.Profile(result.Archetype)

	a.metrics.RecordScore(string(result.Archetype))
	a.logger.ScoringLogger(string(result.Archetype), result.OverallScore, len(answers), time.Since(start))

	c.JSON(http.StatusOK, computeResponse{
		Result:     result,
		Profile:    profile,
		Share:      share.Build(result, a.cfg.Server.PublicURL),
		TopPercent: share.TopPercent(result.Percentile),
	})
}

// handleSubmit godoc
// @Summary Submit a result
// @Description Stores the result recomputed from its answers. A bearer session token marks it verified.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body submitRequest true "Result"
// @Success 201 {object} results.Submission
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/results [post]
func (a *app) handleSubmit(c *gin.Context) {
	start := time.Now()

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.Respond(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	answers, err := a.security.ValidateAnswers(req.Answers)
	if err != nil {
		errors.Respond(c, err)
		return
	}

	result := scoring.ComputeResult(answers, a.questions)
	if req.OverallScore != nil && *req.OverallScore != result.OverallScore {
		slog.Warn("Submitted score differs from recomputed score",
			"submitted", *req.OverallScore,
			"computed", result.OverallScore)
	}

	userID := security.UserID(c)
	clientHash := privacy.ClientHash(c.ClientIP(), c.GetHeader("User-Agent"))
	submission, err := a.results.Submit(c.Request.Context(), result, userID, clientHash)
	a.metrics.RecordSubmission(userID != "", err == nil)
	if err != nil {
		errors.Respond(c, err)
		return
	}

	a.logger.SubmissionLogger(submission.ID, submission.IsVerified, submission.Percentile, submission.PopulationBased, time.Since(start))

	c.JSON(http.StatusCreated, submission)
}

// handleGetResult godoc
// @Summary Shared view of a stored result
// @Description Answers and the submitting user are not included.
// @Tags results
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} results.SharedResult
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/results/{id} [get]
func (a *app) handleGetResult(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errors.Respond(c, errors.NewValidationError("invalid result id", id))
		return
	}

	shared, err := a.results.Get(c.Request.Context(), id)
	if err != nil {
		errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, shared)
}

// handleStats godoc
// @Summary Statistics over verified results
// @Tags results
// @Produce json
// @Success 200 {object} results.Stats
// @Failure 503 {object} errorResponse
// @Router /api/stats [get]
func (a *app) handleStats(c *gin.Context) {
	stats, err := a.results.Stats(c.Request.Context())
	if err != nil {
		errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// handleStartSession godoc
// @Summary Start an anonymous session
// @Tags auth
// @Produce json
// @Success 201 {object} database.Session
// @Router /api/session [post]
func (a *app) handleStartSession(c *gin.Context) {
	session, err := a.users.StartSession(c.Request.Context(),
		privacy.AnonymizeIP(c.ClientIP()), c.GetHeader("User-Agent"))
	if err != nil {
		errors.Respond(c, errors.NewStorageError("start session", err))
		return
	}

	c.JSON(http.StatusCreated, session)
}

// handlePrivacyPolicy godoc
// @Summary Data retention policy
// @Tags privacy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/privacy/policy [get]
func (a *app) handlePrivacyPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, a.privacy.GetDataRetentionInfo())
}

func (a *app) handlePrivacySettings(c *gin.Context) {
	settings, err := a.privacy.GetPrivacySettings(c.Request.Context(), security.UserID(c))
	if err != nil {
		errors.Respond(c, errors.NewStorageError("privacy settings", err))
		return
	}

	c.JSON(http.StatusOK, settings)
}

// handleDeleteData godoc
// @Summary Delete the caller's stored results
// @Tags privacy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} privacy.DeletionReport
// @Failure 401 {object} errorResponse
// @Router /api/privacy/data [delete]
func (a *app) handleDeleteData(c *gin.Context) {
	report, err := a.privacy.DeleteUserData(c.Request.Context(), security.UserID(c))
	if err != nil {
		errors.Respond(c, errors.NewStorageError("delete user data", err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// bindAnswers reads an {answers} body and validates it. It writes the error
// response itself and reports false on failure.
func (a *app) bindAnswers(c *gin.Context) (scoring.Answers, bool) {
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.Respond(c, errors.NewValidationError("invalid request body", err.Error()))
		return nil, false
	}

	answers, err := a.security.ValidateAnswers(req.Answers)
	if err != nil {
		errors.Respond(c, err)
		return nil, false
	}

	return answers, true
}
