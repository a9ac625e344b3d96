package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

func TestHTTPErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", &domain.ValidationError{Field: "email", Reason: "is required"}, http.StatusBadRequest, "email is required"},
		{"auth failed", domain.ErrAuthFailed, http.StatusUnauthorized, "authentication failed"},
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized, "not authenticated"},
		{"alert not found", domain.ErrAlertNotFound, http.StatusNotFound, "alert not found"},
		{"refresh in flight", domain.ErrRefreshInFlight, http.StatusConflict, "refresh already in progress"},
		{"view superseded", domain.ErrViewSuperseded, http.StatusConflict, "view superseded"},
		{"remote failure", &domain.RequestError{Endpoint: "/devices", Message: "upstream down"}, http.StatusBadGateway, "upstream down"},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.wantCode, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.wantMsg) {
			t.Fatalf("%s: expected %q in body, got %s", tc.name, tc.wantMsg, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.String(http.StatusOK, "already sent"); err != nil {
		t.Fatalf("write: %v", err)
	}

	handler(errors.New("late failure"), c)

	if rec.Body.String() != "already sent" {
		t.Fatalf("committed response must not be rewritten, got %s", rec.Body.String())
	}
}
