package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ibraschwan/karagul/internal/api/handler"
	"github.com/ibraschwan/karagul/internal/api/middleware"
	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
	"github.com/ibraschwan/karagul/internal/core/service"
	"github.com/ibraschwan/karagul/internal/infrastructure/config"
	"github.com/ibraschwan/karagul/internal/infrastructure/strapi"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil unless the Redis session backend is configured.
func NewRouter(cfg *config.Config, client *strapi.Client, sessions ports.SessionStore, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("karagul"))
	e.Use(middleware.Session(cfg.Session.CookieName))

	// --- Dependencies ---
	authService := service.NewAuthService(client.Auth, sessions, log)
	directory := service.NewDirectoryService(client.Businesses, client.Categories, client.Contacts, log)
	guard := middleware.NewGuard(authService)

	authHandler := handler.NewAuthHandler(authService)
	homeHandler := handler.NewHomeHandler(directory)
	businessHandler := handler.NewBusinessHandler(directory, client.Businesses)
	categoryHandler := handler.NewCategoryHandler(directory)
	contactHandler := handler.NewContactHandler(directory)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Public directory routes ---
	e.GET("/home", homeHandler.Home)
	e.GET("/search", businessHandler.Search)
	e.GET("/businesses", businessHandler.List)
	e.GET("/businesses/:slug", businessHandler.GetBySlug)
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:slug", categoryHandler.GetBySlug)
	e.POST("/contact", contactHandler.Create)

	// --- Owner dashboard routes (business or admin role) ---
	my := e.Group("/my/businesses", guard.RequireRole(domain.RoleBusiness, domain.RoleAdmin))
	my.POST("", businessHandler.Create)
	my.PUT("/:id", businessHandler.Update)
	my.DELETE("/:id", businessHandler.Delete)
	my.GET("/:id/messages", businessHandler.Messages)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(client, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
