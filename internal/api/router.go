package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/labreserve/switch-console/docs"
	"github.com/labreserve/switch-console/internal/api/handler"
	"github.com/labreserve/switch-console/internal/api/middleware"
	"github.com/labreserve/switch-console/internal/core/ports"
)

// Deps is everything the console routes are built from.
type Deps struct {
	Auth         ports.AuthService
	Switches     ports.SwitchService
	Reservations ports.ReservationService
	Ports        ports.PortService
	Users        ports.UserService
	Topology     ports.TopologyService
	Batch        ports.Batcher
	Guard        middleware.Evaluator
	// Readiness lists the dependencies /health/ready pings, by name.
	Readiness map[string]ports.Pinger
	Log       zerolog.Logger
	// Registry receives the HTTP metrics. Nil means the default registry,
	// which also holds the package metrics.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(d.Registry)))

	requireAuth := middleware.RequireAuth(d.Guard)
	requireAdmin := middleware.RequireAdmin(d.Auth)

	// --- Public pages ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.GET("/", authHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)

	// --- Reservation (auth required) ---
	reservationHandler := handler.NewReservationHandler(d.Switches, d.Reservations, d.Batch)
	reservation := e.Group("/reservation", requireAuth)
	reservation.GET("", reservationHandler.Page)
	reservation.POST("/reserve", reservationHandler.Reserve)
	reservation.POST("/release", reservationHandler.Release)

	// --- Topology (auth required) ---
	topologyHandler := handler.NewTopologyHandler(d.Ports, d.Topology, d.Batch)
	topology := e.Group("/topology", requireAuth)
	topology.GET("", topologyHandler.Page)
	topology.GET("/switches/:id/ports", topologyHandler.SwitchPorts)
	topology.POST("/connect", topologyHandler.Connect)
	topology.POST("/disconnect", topologyHandler.Disconnect)
	topology.POST("/share", topologyHandler.Share)
	topology.DELETE("/shares/:id", topologyHandler.Unshare)

	// --- Users (auth + admin) ---
	userHandler := handler.NewUserHandler(d.Users)
	users := e.Group("/users", requireAuth, requireAdmin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "switch_console"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
