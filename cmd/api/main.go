package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/casaflow/casaflow/config"
	"github.com/casaflow/casaflow/pkg/activity"
	"github.com/casaflow/casaflow/pkg/api/handlers"
	apimw "github.com/casaflow/casaflow/pkg/api/middleware"
	"github.com/casaflow/casaflow/pkg/auth"
	"github.com/casaflow/casaflow/pkg/board"
	"github.com/casaflow/casaflow/pkg/cache"
	"github.com/casaflow/casaflow/pkg/database"
	"github.com/casaflow/casaflow/pkg/email"
	"github.com/casaflow/casaflow/pkg/export"
	"github.com/casaflow/casaflow/pkg/jobs"
	"github.com/casaflow/casaflow/pkg/logger"
	"github.com/casaflow/casaflow/pkg/metrics"
	custommw "github.com/casaflow/casaflow/pkg/middleware"
	"github.com/casaflow/casaflow/pkg/opportunity"
	"github.com/casaflow/casaflow/pkg/pipeline"
	"github.com/casaflow/casaflow/pkg/webhook"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommw.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommw.NewRateLimiter(5, 2) // 5 req/min for login

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "CasaFlow API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize services
	pipelineService := pipeline.NewService(db.Ent, redisClient)
	webhookService := webhook.NewService(db.Ent)
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.FrontendURL)
	opportunityService := opportunity.NewService(db.Ent, pipelineService, webhookService)
	opportunityService.SetEmailNotifier(emailService)
	boardService := board.NewService(db.Ent, pipelineService, redisClient)
	activityService := activity.NewService(db.Ent)
	exportService := export.NewService(boardService, cfg.ExportStoragePath)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, prometheusMetrics)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService, prometheusMetrics)
	boardHandler := handlers.NewBoardHandler(boardService, cfg, prometheusMetrics)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	activityHandler := handlers.NewActivityHandler(activityService)
	exportHandler := handlers.NewExportHandler(exportService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)

	// API v1 routes
	v1 := e.Group("/api/v1")
	v1.Use(custommw.APIVersionMiddleware(custommw.CurrentAPIVersion))

	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommw.VersionInfo(custommw.CurrentAPIVersion))
	})

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Auth routes (public, tighter rate limit on login)
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
	}

	// Authenticated routes
	jwtMiddleware := apimw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent)

	authProtected := v1.Group("/auth", jwtMiddleware)
	{
		authProtected.POST("/logout", authHandler.Logout)
	}

	protected := v1.Group("", jwtMiddleware)
	{
		protected.POST("/opportunities/move", opportunityHandler.Move)

		protected.GET("/board", boardHandler.GetBoard)
		protected.GET("/board/stages", boardHandler.GetStages)

		protected.GET("/pipeline", pipelineHandler.GetConfig)

		protected.GET("/leads/:id/activities", activityHandler.ListByLead)

		protected.POST("/exports/board", exportHandler.CreateBoardExport)
	}

	// Admin routes
	adminProtected := v1.Group("", jwtMiddleware, custommw.RequireAdmin(db.Ent))
	{
		adminProtected.PUT("/pipeline", pipelineHandler.UpdateConfig)

		adminProtected.POST("/webhooks", webhookHandler.Create)
		adminProtected.GET("/webhooks", webhookHandler.List)
		adminProtected.DELETE("/webhooks/:id", webhookHandler.Delete)
	}

	// Cron jobs
	jobLogger := logger.New(cfg.LogLevel)
	if cfg.APIEnvironment == "development" {
		jobLogger = logger.NewText(cfg.LogLevel)
	}

	var cronManager *jobs.CronManager
	if cfg.EnableCronJobs {
		cronManager = jobs.NewCronManager(boardService, jobLogger)
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to set up cron jobs: %v", err)
		}
		cronManager.Start()
	} else {
		log.Printf("ℹ️  Cron jobs disabled (ENABLE_CRON_JOBS=false)")
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 CasaFlow API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cronManager != nil {
		cronManager.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
