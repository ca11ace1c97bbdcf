package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/bloghub/blog-platform/docs"
	"github.com/bloghub/blog-platform/internal/api/handler"
	"github.com/bloghub/blog-platform/internal/api/middleware"
	"github.com/bloghub/blog-platform/internal/core/ports"
	"github.com/bloghub/blog-platform/internal/core/service"
	"github.com/bloghub/blog-platform/internal/infrastructure/config"
	"github.com/bloghub/blog-platform/internal/infrastructure/db/mysql"
	httphandlers "github.com/bloghub/blog-platform/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, audit ports.AuditRecorder, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		tokenTTL = 24 * time.Hour
	}

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	postRepo := mysql.NewPostRepository(db)
	creds := service.NewCredentialService(cfg.JWTSecret, tokenTTL)
	userService := service.NewUserService(userRepo, creds, log)
	postService := service.NewPostService(postRepo, audit, log)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	auth := middleware.Auth(creds, userRepo)
	optionalAuth := middleware.OptionalAuth(creds, userRepo)
	rateLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Enabled: cfg.RateLimit.Enabled,
		Limit:   cfg.RateLimit.Limit,
		Window:  time.Duration(cfg.RateLimit.Window) * time.Second,
	}, rdb)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, rateLimit)
	e.POST("/auth/login", authHandler.Login, rateLimit)

	// --- Users ---
	e.GET("/users", userHandler.List, auth)

	// --- Posts ---
	e.GET("/posts", postHandler.List, optionalAuth)
	e.POST("/posts", postHandler.Create, auth)
	e.GET("/posts/:id", postHandler.Get, auth)
	e.PUT("/posts/:id", postHandler.Update, auth)
	e.DELETE("/posts/:id", postHandler.Delete, auth)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
