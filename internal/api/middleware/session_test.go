package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

type fixedAuth bool

func (a fixedAuth) Authenticated() bool { return bool(a) }

func TestRequireSession(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/state", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireSession(fixedAuth(false))(next)(c)
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := RequireSession(fixedAuth(true))(next)(c); err != nil {
		t.Fatalf("authenticated request must pass through: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
