package service

import (
	"context"
	"sync"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// stubTransport implements ports.Transport. Any endpoint without a configured
// fn fails with a RequestError, which the aggregation absorbs as a fallback.
type stubTransport struct {
	loginFn         func(ctx context.Context, email, password string) (string, *domain.UserProfile, error)
	registerFn      func(ctx context.Context, input ports.RegisterInput) (string, error)
	profileFn       func(ctx context.Context) (*domain.UserProfile, error)
	currentHealthFn func(ctx context.Context) (*domain.HealthPayload, error)
	historyFn       func(ctx context.Context, kind domain.MetricKind, days int) ([]domain.HistoryPoint, error)
	submitHealthFn  func(ctx context.Context, input ports.HealthInput) error
	academicFn      func(ctx context.Context) (*domain.AcademicPayload, error)
	submitAcadFn    func(ctx context.Context, input ports.AcademicInput) error
	predictionsFn   func(ctx context.Context) (*domain.PredictionPayload, error)
	alertsFn        func(ctx context.Context, includeResolved bool) ([]domain.Alert, error)
	resolveAlertFn  func(ctx context.Context, id int) error
	devicesFn       func(ctx context.Context) ([]domain.Device, error)
	goalsFn         func(ctx context.Context) (map[string]domain.Goal, error)
	lifestyleFn     func(ctx context.Context) (*domain.LifestylePayload, error)
}

func unavailable(endpoint string) *domain.RequestError {
	return &domain.RequestError{Endpoint: endpoint, Message: "unavailable"}
}

func (s *stubTransport) Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error) {
	if s.loginFn == nil {
		return "", nil, unavailable("/auth/login")
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubTransport) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if s.registerFn == nil {
		return "", unavailable("/auth/register")
	}
	return s.registerFn(ctx, input)
}

func (s *stubTransport) Profile(ctx context.Context) (*domain.UserProfile, error) {
	if s.profileFn == nil {
		return nil, unavailable("/auth/profile")
	}
	return s.profileFn(ctx)
}

func (s *stubTransport) CurrentHealth(ctx context.Context) (*domain.HealthPayload, error) {
	if s.currentHealthFn == nil {
		return nil, unavailable("/health/current")
	}
	return s.currentHealthFn(ctx)
}

func (s *stubTransport) HealthHistory(ctx context.Context, kind domain.MetricKind, days int) ([]domain.HistoryPoint, error) {
	if s.historyFn == nil {
		return nil, unavailable("/health/history")
	}
	return s.historyFn(ctx, kind, days)
}

func (s *stubTransport) SubmitHealth(ctx context.Context, input ports.HealthInput) error {
	if s.submitHealthFn == nil {
		return unavailable("/health/submit")
	}
	return s.submitHealthFn(ctx, input)
}

func (s *stubTransport) AcademicPerformance(ctx context.Context) (*domain.AcademicPayload, error) {
	if s.academicFn == nil {
		return nil, unavailable("/academic/performance")
	}
	return s.academicFn(ctx)
}

func (s *stubTransport) SubmitAcademic(ctx context.Context, input ports.AcademicInput) error {
	if s.submitAcadFn == nil {
		return unavailable("/academic/submit")
	}
	return s.submitAcadFn(ctx, input)
}

func (s *stubTransport) Predictions(ctx context.Context) (*domain.PredictionPayload, error) {
	if s.predictionsFn == nil {
		return nil, unavailable("/predictions")
	}
	return s.predictionsFn(ctx)
}

func (s *stubTransport) Alerts(ctx context.Context, includeResolved bool) ([]domain.Alert, error) {
	if s.alertsFn == nil {
		return nil, unavailable("/alerts")
	}
	return s.alertsFn(ctx, includeResolved)
}

func (s *stubTransport) ResolveAlert(ctx context.Context, id int) error {
	if s.resolveAlertFn == nil {
		return unavailable("/alerts/resolve")
	}
	return s.resolveAlertFn(ctx, id)
}

func (s *stubTransport) Devices(ctx context.Context) ([]domain.Device, error) {
	if s.devicesFn == nil {
		return nil, unavailable("/devices")
	}
	return s.devicesFn(ctx)
}

func (s *stubTransport) Goals(ctx context.Context) (map[string]domain.Goal, error) {
	if s.goalsFn == nil {
		return nil, unavailable("/goals")
	}
	return s.goalsFn(ctx)
}

func (s *stubTransport) Lifestyle(ctx context.Context) (*domain.LifestylePayload, error) {
	if s.lifestyleFn == nil {
		return nil, unavailable("/lifestyle")
	}
	return s.lifestyleFn(ctx)
}

// stubSessions is an in-memory ports.SessionStore for tests.
type stubSessions struct {
	mu    sync.Mutex
	token string
	user  *domain.UserProfile
}

func activeSessions() *stubSessions {
	return &stubSessions{token: "test-token"}
}

func (s *stubSessions) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *stubSessions) User() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *stubSessions) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *stubSessions) Save(_ context.Context, token string, user *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

func (s *stubSessions) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
