package ports

import (
	"context"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

// DashboardService is the surface exposed to the rendering collaborator:
// read accessors over the canonical state plus the action entry points.
type DashboardService interface {
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)
	Register(ctx context.Context, input RegisterInput) (string, error)
	Logout(ctx context.Context) error
	Authenticated() bool

	// State returns a copy of the canonical snapshot, or nil before login.
	State() *domain.DashboardState

	// Refresh performs a full re-aggregation, equivalent to the initial load.
	Refresh(ctx context.Context) error

	ResolveAlert(ctx context.Context, id int) error
	SubmitHealth(ctx context.Context, input HealthInput) error
	SubmitAcademic(ctx context.Context, input AcademicInput) error

	Metrics() (MetricsView, error)
	UserInfo() (UserInfoView, error)
	AlertsView() ([]AlertView, error)
	ExamsView() ([]ExamView, error)
	DevicesView() ([]DeviceView, error)
	GoalsView() ([]GoalView, error)
	Recommendations() ([]string, error)

	// Analytics activates the analytics view: bumps the chart slot
	// generations and rebuilds all historical series from scratch.
	Analytics(ctx context.Context, days int) (*AnalyticsView, error)

	// ReleaseAnalytics tears down the chart slots when the analytics view
	// is left; any series still in flight for them becomes stale.
	ReleaseAnalytics()
}
