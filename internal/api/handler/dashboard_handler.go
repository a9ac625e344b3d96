package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// State returns the full merged snapshot.
func (h *DashboardHandler) State(c echo.Context) error {
	state := h.dashboard.State()
	if state == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, state)
}

// Refresh triggers a full re-aggregation.
func (h *DashboardHandler) Refresh(c echo.Context) error {
	if err := h.dashboard.Refresh(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "refreshed"})
}

func (h *DashboardHandler) Metrics(c echo.Context) error {
	view, err := h.dashboard.Metrics()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) UserInfo(c echo.Context) error {
	view, err := h.dashboard.UserInfo()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Alerts(c echo.Context) error {
	views, err := h.dashboard.AlertsView()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// ResolveAlert flips the alert locally and confirms with the remote service.
func (h *DashboardHandler) ResolveAlert(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "alert id must be an integer")
	}
	if err := h.dashboard.ResolveAlert(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "resolved"})
}

func (h *DashboardHandler) Exams(c echo.Context) error {
	views, err := h.dashboard.ExamsView()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *DashboardHandler) Devices(c echo.Context) error {
	views, err := h.dashboard.DevicesView()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *DashboardHandler) Goals(c echo.Context) error {
	views, err := h.dashboard.GoalsView()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *DashboardHandler) Recommendations(c echo.Context) error {
	recs, err := h.dashboard.Recommendations()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

// Analytics activates the analytics view and returns freshly built chart
// series. The days query parameter defaults to 7.
func (h *DashboardHandler) Analytics(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = n
	}

	view, err := h.dashboard.Analytics(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ReleaseAnalytics tears the analytics view down when the collaborator
// switches away from it.
func (h *DashboardHandler) ReleaseAnalytics(c echo.Context) error {
	h.dashboard.ReleaseAnalytics()
	return c.JSON(http.StatusOK, statusResponse{Status: "released"})
}

// SubmitHealth forwards a manual health-data entry to the remote service.
func (h *DashboardHandler) SubmitHealth(c echo.Context) error {
	var req healthDataRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.dashboard.SubmitHealth(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Status: "submitted"})
}

// SubmitAcademic forwards a manual academic-data entry to the remote service.
func (h *DashboardHandler) SubmitAcademic(c echo.Context) error {
	var req academicDataRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.dashboard.SubmitAcademic(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Status: "submitted"})
}
