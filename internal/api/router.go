package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/helpdesk/ticketing-system/internal/api/handler"
	"github.com/helpdesk/ticketing-system/internal/api/middleware"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// Deps carries everything the router needs wired in from main.
type Deps struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Auth       ports.AuthService
	Sessions   ports.SessionService
	Tickets    ports.TicketService
	SessionTTL time.Duration
	// SecureCookie marks the session cookie transport-secure (production).
	SecureCookie bool
	// StaticRoot is the directory holding the SPA shell; all non-API
	// routes fall through to its index.html.
	StaticRoot string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("helpdesk"))

	// --- Gates ---
	authenticated := middleware.Session(deps.Sessions)
	adminOnly := middleware.RequireAdmin()

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions, deps.SessionTTL, deps.SecureCookie)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Ticket routes ---
	ticketHandler := handler.NewTicketHandler(deps.Tickets)
	tickets := e.Group("/api/tickets", authenticated)
	tickets.POST("", ticketHandler.Create)
	tickets.GET("", ticketHandler.List)
	tickets.PATCH("/:id/status", ticketHandler.UpdateStatus, adminOnly)
	tickets.DELETE("/:id", ticketHandler.Delete, adminOnly)
	tickets.POST("/:id/comments", ticketHandler.AddComment, adminOnly)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static front-end shell (SPA fallback for everything else) ---
	if deps.StaticRoot != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  deps.StaticRoot,
			HTML5: true, // unknown routes fall back to index.html
		}))
	}

	return e
}
