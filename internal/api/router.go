package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/camburiu/acessoria-api/internal/api/handler"
	"github.com/camburiu/acessoria-api/internal/api/middleware"
	"github.com/camburiu/acessoria-api/internal/core/service"
	"github.com/camburiu/acessoria-api/internal/infrastructure/config"
	"github.com/camburiu/acessoria-api/internal/infrastructure/db/postgres"
	redisdb "github.com/camburiu/acessoria-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	authService := service.NewAuthService(userRepo, codec, hasher, throttle, log)
	userService := service.NewUserService(userRepo, hasher, log)
	clientService := service.NewClientService(clientRepo, log)
	vehicleService := service.NewVehicleService(vehicleRepo, clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)

	auth := middleware.Auth(codec, userRepo)
	optionalAuth := middleware.OptionalAuth(codec, userRepo)

	// --- Public routes ---
	e.POST("/api/authenticate", authHandler.Authenticate)
	// user creation stays open so a fresh install can bootstrap its first
	// administrator; the service enforces admin-only after that
	e.POST("/usuarios", userHandler.Create, optionalAuth)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes ---
	usuarios := e.Group("/usuarios", auth)
	usuarios.GET("", userHandler.List)
	usuarios.GET("/me", userHandler.Me)
	usuarios.GET("/:id", userHandler.Get)
	usuarios.PUT("/:id", userHandler.Update)
	usuarios.PUT("/:id/senha", userHandler.ChangePassword)
	usuarios.DELETE("/:id", userHandler.Delete)

	administradores := e.Group("/administradores", auth)
	administradores.GET("", adminHandler.List)
	administradores.GET("/:id", adminHandler.Get)
	administradores.POST("", adminHandler.Create)

	clientes := e.Group("/clientes", auth)
	clientes.GET("", clientHandler.List)
	clientes.POST("", clientHandler.Create)
	clientes.GET("/:id", clientHandler.Get)
	clientes.PUT("/:id", clientHandler.Update)
	clientes.DELETE("/:id", clientHandler.Delete)

	veiculos := e.Group("/veiculos", auth)
	veiculos.GET("", vehicleHandler.List)
	veiculos.POST("", vehicleHandler.Create)
	veiculos.GET("/:id", vehicleHandler.Get)
	veiculos.PUT("/:id", vehicleHandler.Update)
	veiculos.DELETE("/:id", vehicleHandler.Delete)

	return e
}
