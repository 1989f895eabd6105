package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/cache"
	"github.com/rahat-dev/mindnest/backend/internal/handlers"
	"github.com/rahat-dev/mindnest/backend/internal/middleware"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"github.com/rahat-dev/mindnest/backend/pkg/logger"
	"github.com/rahat-dev/mindnest/backend/pkg/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Deps carries everything route wiring needs
type Deps struct {
	Postgres     *gorm.DB
	Mongo        *mongo.Client
	FirebaseAuth *auth.Client // nil disables social login
	Generator    ai.Generator
	RecCache     *cache.RecommendationCache
	Mailer       services.Mailer
	Log          logger.Logger
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, log logger.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(metrics.Middleware())
	log.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// It returns the recommendation service so the caller can hand it to the
// scheduler.
func SetupRoutes(e *echo.Echo, d Deps) (*services.RecommendationService, error) {
	// AutoMigrate PostgreSQL models
	err := d.Postgres.AutoMigrate(
		&models.User{},
		&models.MoodEntry{},
		&models.Intervention{},
		&models.InterventionSession{},
		&models.JournalEntry{},
		&models.Habit{},
		&models.HabitCheckin{},
		&models.SleepEntry{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Like{},
		&models.UserPreference{},
		&models.Recommendation{},
		&models.ContentMetadata{},
		&models.SavedContent{},
		&models.SupportMessage{},
	)
	if err != nil {
		return nil, err
	}
	d.Log.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(d.Postgres)
	moodRepo := repositories.NewPostgresMoodEntryRepository(d.Postgres)
	interventionRepo := repositories.NewPostgresInterventionRepository(d.Postgres)
	journalRepo := repositories.NewPostgresJournalRepository(d.Postgres)
	habitRepo := repositories.NewPostgresHabitRepository(d.Postgres)
	sleepRepo := repositories.NewPostgresSleepRepository(d.Postgres)
	postRepo := repositories.NewMongoPostRepository(d.Mongo.Database("mindnest"))
	commentRepo := repositories.NewPostgresCommentRepository(d.Postgres)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(d.Postgres)
	likeRepo := repositories.NewPostgresLikeRepository(d.Postgres)
	preferenceRepo := repositories.NewPostgresPreferenceRepository(d.Postgres)
	recommendationRepo := repositories.NewPostgresRecommendationRepository(d.Postgres)
	contentRepo := repositories.NewPostgresContentRepository(d.Postgres)
	savedContentRepo := repositories.NewPostgresSavedContentRepository(d.Postgres)
	supportRepo := repositories.NewPostgresSupportRepository(d.Postgres)

	// --- Services ---
	insightsService := services.NewInsightsService(moodRepo, d.Generator)
	recommendationService := services.NewRecommendationService(
		recommendationRepo, moodRepo, contentRepo, d.Generator, d.RecCache, d.Log)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, d.FirebaseAuth)
	authHandler.RegisterAuthRoutes(authGroup)
	d.Log.Info("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	d.Log.Info("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)

	// Mood tracking routes
	moodHandler := handlers.NewMoodHandler(moodRepo, insightsService)
	moodHandler.RegisterMoodRoutes(api)

	// Intervention routes
	interventionHandler := handlers.NewInterventionHandler(interventionRepo, d.Generator)
	interventionHandler.RegisterInterventionRoutes(api)

	// Journal routes
	journalHandler := handlers.NewJournalHandler(journalRepo, moodRepo, d.Generator)
	journalHandler.RegisterJournalRoutes(api)

	// Habit routes
	habitHandler := handlers.NewHabitHandler(habitRepo)
	habitHandler.RegisterHabitRoutes(api)

	// Sleep tracking routes
	sleepHandler := handlers.NewSleepHandler(sleepRepo)
	sleepHandler.RegisterSleepRoutes(api)

	// Community post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, d.Generator)
	postHandler.RegisterPostRoutes(api)

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, commentLikeRepo)
	commentHandler.RegisterCommentRoutes(api)

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)

	// Preference routes
	preferenceHandler := handlers.NewPreferenceHandler(preferenceRepo)
	preferenceHandler.RegisterPreferenceRoutes(api)

	// Recommendation routes
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, recommendationRepo)
	recommendationHandler.RegisterRecommendationRoutes(api)

	// Content catalog routes
	contentHandler := handlers.NewContentHandler(contentRepo, savedContentRepo)
	contentHandler.RegisterContentRoutes(api)

	// Support routes
	supportHandler := handlers.NewSupportHandler(supportRepo, userRepo, d.Mailer)
	supportHandler.RegisterSupportRoutes(api)

	// --- Admin routes ---
	admin := api.Group("/admin", middleware.AdminOnly(userRepo))
	userHandler.RegisterAdminUserRoutes(admin)
	interventionHandler.RegisterAdminInterventionRoutes(admin)
	contentHandler.RegisterAdminContentRoutes(admin)
	supportHandler.RegisterAdminSupportRoutes(admin)
	d.Log.Info("Admin routes configured.")

	d.Log.Info("All routes configured.")
	return recommendationService, nil
}
