package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/homeserve/household-api/internal/api/handler"
	"github.com/homeserve/household-api/internal/api/middleware"
	"github.com/homeserve/household-api/internal/core/ports"
)

const bodyLimit = "1M"

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Accounts     ports.AccountService
	Profiles     ports.ProfileService
	ServicePosts ports.ServicePostService
	Requirements ports.RequirementService
	Translation  ports.TranslationService
	Verifier     ports.IdentityVerifier

	// Readiness lists the dependencies pinged by GET /health/ready.
	Readiness map[string]handler.Pinger
	// AllowedOrigins feeds the CORS policy.
	AllowedOrigins []string

	// Registerer and Gatherer back the HTTP metrics and GET /metrics. They
	// default to the process-wide prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "household",
		Registerer: deps.Registerer,
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	accounts := handler.NewAccountHandler(deps.Accounts)
	profiles := handler.NewProfileHandler(deps.Profiles)
	posts := handler.NewServicePostHandler(deps.ServicePosts)
	requirements := handler.NewRequirementHandler(deps.Requirements)
	translation := handler.NewTranslationHandler(deps.Translation)

	// --- Public routes ---
	e.GET("/services", posts.List)
	e.GET("/requirements", requirements.List)
	e.GET("/languages", translation.Languages)
	e.POST("/translate", translation.Translate)
	e.POST("/translate-batch", translation.TranslateBatch)
	e.POST("/detect-language", translation.DetectLanguage)

	// --- Authenticated routes ---
	// Attached per route so unknown paths still answer 404.
	auth := middleware.Auth(deps.Verifier)

	e.POST("/select-role", accounts.SelectRole, auth)
	e.POST("/auth/sync", accounts.Sync, auth)
	e.GET("/me", accounts.Me, auth)

	e.POST("/profile", profiles.UpsertProfile, auth)
	e.POST("/worker-profile", profiles.UpsertWorkerProfile, auth)
	e.GET("/worker-profile", profiles.GetWorkerProfile, auth)
	e.POST("/verify-me", profiles.VerifyMe, auth)
	e.POST("/admin/verify-user", profiles.AdminVerify, auth)

	e.POST("/services", posts.Create, auth)
	e.GET("/my-services", posts.ListMine, auth)
	e.PATCH("/services/:id/toggle", posts.Toggle, auth)
	e.DELETE("/services/:id", posts.Delete, auth)

	e.POST("/requirements", requirements.Create, auth)
	e.GET("/my-requirements", requirements.ListMine, auth)
	e.PATCH("/requirements/:id/toggle", requirements.Toggle, auth)
	e.DELETE("/requirements/:id", requirements.Delete, auth)

	return e
}

// requestLogger emits one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
