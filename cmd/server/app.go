package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/ai-adoption-score/docs"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/cache"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/config"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/database"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/middleware"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/monitoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/privacy"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/ratelimit"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/results"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/security"
)

// computeCacheTTL bounds how long identical answer sets are served from memory
const computeCacheTTL = 15 * time.Minute

// app holds the wired services behind the HTTP API
type app struct {
	cfg       *config.Config
	db        *database.DB
	users     *database.UserService
	questions []scoring.Question
	results   *results.Service
	privacy   *privacy.PrivacyService
	redis     *ratelimit.RedisClient
	limiter   *ratelimit.RateLimiter
	security  *security.SecurityMiddleware
	metrics   *monitoring.Metrics
	logger    *monitoring.Logger
	respCache *cache.Cache
	compress  *middleware.CompressionMiddleware
}

func newApp(ctx context.Context, cfg *config.Config, logger *monitoring.Logger) (*app, error) {
	gin.SetMode(cfg.Server.GinMode)

	questions := catalog.Default()
	if cfg.Catalog.File != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, errors.NewConfigurationError("failed to load question catalog", err)
		}
		questions = loaded
		slog.Info("Loaded question catalog", "path", cfg.Catalog.File, "questions", len(questions))
	}

	db, err := database.NewDB(cfg.Storage.DataDir)
	if err != nil {
		return nil, errors.WrapError(err, "failed to initialize database")
	}

	repo := database.NewRepository(db)
	users := database.NewUserService(repo, cfg.Auth.JWTSecret).WithTTL(cfg.Auth.SessionTTL)

	resultsSvc := results.NewServiceWithCache(repo, results.NewStatsCache(cfg.Stats.CacheTTL))

	privacySvc := privacy.NewService(repo, cfg.Storage.RetentionDays)
	privacySvc.OnChange(resultsSvc.Cache())

	redisClient, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}

	metrics := monitoring.NewMetrics()
	limiter := ratelimit.NewRateLimiter(redisClient, cfg.RateLimit, metrics)

	sec := security.NewSecurityMiddleware(cfg.Security)
	sec.SetSessionValidator(users)

	return &app{
		cfg:       cfg,
		db:        db,
		users:     users,
		questions: questions,
		results:   resultsSvc,
		privacy:   privacySvc,
		redis:     redisClient,
		limiter:   limiter,
		security:  sec,
		metrics:   metrics,
		logger:    logger,
		respCache: cache.NewCache(computeCacheTTL),
		compress:  middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig()),
	}, nil
}

func (a *app) close() {
	a.limiter.Close()
	a.respCache.Close()
	a.results.Cache().Close()
	errors.SafeClose(a.redis, "redis")
	errors.SafeClose(a.db, "database")
}

func (a *app) setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(a.compress.Handler())

	// request metrics and logging wrap everything below
	r.Use(monitoring.MonitoringMiddleware(a.metrics, a.logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(a.logger))

	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	r.Use(a.security.SecurityHeaders)
	r.Use(a.security.RequestTimeout)
	r.Use(a.security.ValidateContentType)
	r.Use(a.security.LimitBody)
	r.Use(a.limiter.IPRateLimitMiddleware())

	r.Use(a.respCache.Middleware(a.metrics, a.logger, "/api/results/compute"))

	r.GET("/health", a.handleHealth)
	r.GET("/metrics", a.handleMetrics)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/questions", a.handleQuestions)
		api.POST("/quiz/next", a.handleNextQuestion)

		api.POST("/results/compute", a.handleCompute)
		api.POST("/results",
			a.security.OptionalAuth,
			a.limiter.SubmissionRateLimitMiddleware(clientKey),
			a.handleSubmit)
		api.GET("/results/:id", a.handleGetResult)
		api.GET("/stats", a.handleStats)

		api.POST("/session", a.handleStartSession)

		api.GET("/privacy/policy", a.handlePrivacyPolicy)
		api.GET("/privacy/settings", a.security.RequireAuth, a.handlePrivacySettings)
		api.DELETE("/privacy/data", a.security.RequireAuth, a.handleDeleteData)
	}

	return r
}

// clientKey identifies a submitter for rate limiting without storing the raw IP
func clientKey(c *gin.Context) string {
	if userID := security.UserID(c); userID != "" {
		return "user:" + userID
	}
	return privacy.ClientHash(c.ClientIP(), c.GetHeader("User-Agent"))
}
