package router

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anonto42/inko/backend/internal/auth"
	"github.com/anonto42/inko/backend/internal/handlers"
	"github.com/anonto42/inko/backend/internal/metrics"
	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/repositories"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/anonto42/inko/backend/pkg/config"
	"github.com/anonto42/inko/backend/validators"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 72 * time.Hour

// NewEcho creates the Echo instance with validation, error rendering and global middleware.
func NewEcho(cfg *config.Config, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	config.SetupMiddleware(e, cfg, m.Middleware())
	return e
}

// Options tunes SetupRoutes; the zero value is production behaviour.
type Options struct {
	// BcryptCost overrides the password hashing cost.
	BcryptCost int
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, m *metrics.Metrics, opts Options) error {
	if cfg.AutoMigrate {
		if err := repositories.AutoMigrateAll(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		slog.Info("Auto-migrations completed for all models.")
	}

	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, TokenTTL)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, auth.NewPasswordHasher(cost), tokens, m)
	postService := services.NewPostService(postRepo, userRepo, followRepo)
	engagementService := services.NewEngagementService(db, postRepo, likeRepo, commentRepo, notificationRepo, m)
	socialService := services.NewSocialService(db, userRepo, followRepo, notificationRepo, m)
	notificationService := services.NewNotificationService(notificationRepo)

	// Health check and index, always accessible
	handlers.NewHealthHandler(db).RegisterHealthRoutes(e)

	// Signup and login issue tokens, so they never look at one.
	handlers.NewAuthHandler(authService).RegisterAuthRoutes(e.Group("/api/auth"))

	// Identity comes from the request; a bearer token, when sent, must match it.
	api := e.Group("/api", middleware.JWTAuthMiddleware(tokens))
	handlers.NewFeedHandler(postService).RegisterFeedRoutes(api)
	handlers.NewPostHandler(postService).RegisterPostRoutes(api)
	handlers.NewLikeHandler(engagementService).RegisterLikeRoutes(api)
	handlers.NewCommentHandler(engagementService).RegisterCommentRoutes(api)
	handlers.NewFollowHandler(socialService).RegisterFollowRoutes(api)
	handlers.NewUserHandler(postService, socialService).RegisterUserRoutes(api)
	handlers.NewNotificationHandler(notificationService).RegisterNotificationRoutes(api)

	slog.Info("All routes configured.", "routes", len(e.Routes()))
	return nil
}
