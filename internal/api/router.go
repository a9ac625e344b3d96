package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/api/handler"
	"github.com/digitaltwin/dashboard-core/internal/api/middleware"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(dashboard ports.DashboardService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	sessionHandler := handler.NewSessionHandler(dashboard)
	dashboardHandler := handler.NewDashboardHandler(dashboard)
	requireSession := middleware.RequireSession(dashboard)

	// --- Session routes ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/register", sessionHandler.Register)
	e.POST("/session/logout", sessionHandler.Logout)

	// --- Dashboard views and actions (session required) ---
	d := e.Group("/dashboard", requireSession)
	d.GET("/state", dashboardHandler.State)
	d.POST("/refresh", dashboardHandler.Refresh)
	d.GET("/metrics", dashboardHandler.Metrics)
	d.GET("/user", dashboardHandler.UserInfo)
	d.GET("/alerts", dashboardHandler.Alerts)
	d.GET("/exams", dashboardHandler.Exams)
	d.GET("/devices", dashboardHandler.Devices)
	d.GET("/goals", dashboardHandler.Goals)
	d.GET("/recommendations", dashboardHandler.Recommendations)
	d.GET("/analytics", dashboardHandler.Analytics)
	d.DELETE("/analytics", dashboardHandler.ReleaseAnalytics)

	e.POST("/alerts/:id/resolve", dashboardHandler.ResolveAlert, requireSession)
	e.POST("/health-data", dashboardHandler.SubmitHealth, requireSession)
	e.POST("/academic-data", dashboardHandler.SubmitAcademic, requireSession)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
