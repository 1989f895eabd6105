package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/cache"
	"github.com/rahat-dev/mindnest/backend/internal/router"
	"github.com/rahat-dev/mindnest/backend/internal/scheduler"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"github.com/rahat-dev/mindnest/backend/pkg/config"
	"github.com/rahat-dev/mindnest/backend/pkg/firebase"
	"github.com/rahat-dev/mindnest/backend/pkg/logger"
	"github.com/rahat-dev/mindnest/backend/pkg/metrics"
	"github.com/rahat-dev/mindnest/backend/validators"

	firebaseAuth "firebase.google.com/go/v4/auth"
)

func main() {
	// Load configuration
	config.LoadDotEnv()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		zlog.Errorf("Failed to initialize databases: %v", err)
		log.Fatal(err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase; failure only disables social login
	ctx := context.Background()
	var authClient *firebaseAuth.Client
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		zlog.Warnf("Firebase unavailable, social login disabled: %v", err)
	} else {
		authClient = firebaseApp.AuthClient
	}

	// Redis is optional; without it recommendation lists skip the cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			zlog.Warnf("Redis unavailable, recommendation caching disabled: %v", err)
			redisClient = nil
		}
	}

	generator := ai.NewGenerator(ai.NewClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel))
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e, zlog)

	// Setup routes and dependencies
	recService, err := router.SetupRoutes(e, router.Deps{
		Postgres:     db.Postgres,
		Mongo:        db.Mongo,
		FirebaseAuth: authClient,
		Generator:    generator,
		RecCache:     cache.NewRecommendationCache(redisClient),
		Mailer:       mailer,
		Log:          zlog,
	})
	if err != nil {
		zlog.Errorf("Failed to set up routes: %v", err)
		log.Fatal(err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Background jobs: hourly expiry purge, nightly generation
	sched, err := scheduler.New(recService, zlog)
	if err != nil {
		zlog.Errorf("Failed to initialize scheduler: %v", err)
		log.Fatal(err)
	}
	sched.Start()
	defer sched.Stop()

	// Prometheus metrics on a separate listener
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			zlog.Errorf("Metrics server stopped: %v", err)
		}
	}()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
