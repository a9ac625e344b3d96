package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

type SessionHandler struct {
	dashboard ports.DashboardService
}

func NewSessionHandler(dashboard ports.DashboardService) *SessionHandler {
	return &SessionHandler{dashboard: dashboard}
}

// Login authenticates against the remote service, loads the initial snapshot
// and starts the refresh timer.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.dashboard.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{User: user})
}

// Register creates a new account. It does not establish a session.
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	userID, err := h.dashboard.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registerResponse{UserID: userID})
}

// Logout tears the session down. Idempotent.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.dashboard.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "logged out"})
}
