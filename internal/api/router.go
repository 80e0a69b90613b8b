package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/streamvault/identity-api/docs"
	"github.com/streamvault/identity-api/internal/api/handler"
	"github.com/streamvault/identity-api/internal/api/middleware"
	"github.com/streamvault/identity-api/internal/core/ports"
	"github.com/streamvault/identity-api/internal/core/service"
	mongostore "github.com/streamvault/identity-api/internal/infrastructure/db/mongo"
	redisstore "github.com/streamvault/identity-api/internal/infrastructure/db/redis"
	"github.com/streamvault/identity-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is injected because its delivery workers are owned by main's
// lifecycle, not the router's.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	roleRepo := mongostore.NewRoleRepository(db)
	guard := redisstore.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
	issuer := service.NewTokenIssuer(service.TokenIssuerConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	})
	authService := service.NewAuthService(
		userRepo,
		service.NewRoleBootstrapper(roleRepo),
		notifier,
		guard,
		issuer,
		log,
	)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register-admin", authHandler.RegisterAdmin)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
