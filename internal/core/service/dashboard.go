package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/api/metrics"
	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// Dashboard is the application facade: it owns the canonical DashboardState,
// gates everything behind the session, and exposes the read accessors and
// action entry points consumed by the rendering layer. All other components
// only ever see copies of the state.
type Dashboard struct {
	transport ports.Transport
	sessions  ports.SessionStore
	agg       *Aggregator
	sched     *Scheduler
	slots     *SlotRegistry
	log       zerolog.Logger
	now       func() time.Time

	mu         sync.RWMutex
	state      *domain.DashboardState
	refreshing atomic.Bool
}

var _ ports.DashboardService = (*Dashboard)(nil)

func NewDashboard(transport ports.Transport, sessions ports.SessionStore, refreshInterval time.Duration, log zerolog.Logger) *Dashboard {
	d := &Dashboard{
		transport: transport,
		sessions:  sessions,
		slots:     NewSlotRegistry(),
		log:       log,
		now:       time.Now,
	}
	d.agg = NewAggregator(transport, sessions, log)
	d.sched = NewScheduler(d, refreshInterval, log)
	return d
}

// Login authenticates, establishes the session, performs the initial full
// aggregation, and starts the periodic refresh timer.
func (d *Dashboard) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	token, user, err := d.transport.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := d.sessions.Save(ctx, token, user); err != nil {
		return nil, err
	}

	state, err := d.agg.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	d.setState(state)
	d.sched.Start()

	d.log.Info().Str("user", user.Email).Msg("session established")
	return user, nil
}

// Resume picks up a session restored from durable storage: it performs the
// initial aggregation and starts the refresh timer without a new login. A
// no-op when no session is held.
func (d *Dashboard) Resume(ctx context.Context) error {
	if !d.sessions.Active() {
		return nil
	}

	// A restored session may carry only the token; re-fetch the profile so
	// the header projection has a name to show.
	if d.sessions.User() == nil {
		if user, err := d.transport.Profile(ctx); err == nil && user != nil {
			if err := d.sessions.Save(ctx, d.sessions.Token(), user); err != nil {
				d.log.Warn().Err(err).Msg("failed to persist refreshed profile")
			}
		}
	}

	state, err := d.agg.LoadAll(ctx)
	if err != nil {
		return err
	}
	d.setState(state)
	d.sched.Start()
	d.log.Info().Msg("session resumed")
	return nil
}

// Register creates an account on the remote service. It does not establish
// a session; callers log in afterwards.
func (d *Dashboard) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	switch {
	case input.Email == "":
		return "", &domain.ValidationError{Field: "email", Reason: "is required"}
	case input.Password == "":
		return "", &domain.ValidationError{Field: "password", Reason: "is required"}
	case input.FirstName == "":
		return "", &domain.ValidationError{Field: "firstName", Reason: "is required"}
	case input.LastName == "":
		return "", &domain.ValidationError{Field: "lastName", Reason: "is required"}
	}
	return d.transport.Register(ctx, input)
}

// Logout tears the session down: timer canceled, credential cleared, state
// dropped. Safe to call when already logged out.
func (d *Dashboard) Logout(ctx context.Context) error {
	d.sched.Stop()
	err := d.sessions.Clear(ctx)
	d.setState(nil)
	d.log.Info().Msg("session cleared")
	return err
}

// Authenticated reports whether a usable session is held.
func (d *Dashboard) Authenticated() bool {
	return d.sessions.Active()
}

// HandleAuthFailure is invoked by the transport when any call observes an
// HTTP 401: the session is gone, so cancel the timer and drop local state.
// Subsequent requests go out unauthenticated until the next login.
func (d *Dashboard) HandleAuthFailure() {
	metrics.AuthFailuresTotal.Inc()
	d.sched.Stop()
	if err := d.sessions.Clear(context.Background()); err != nil {
		d.log.Error().Err(err).Msg("failed to clear session after auth failure")
	}
	d.setState(nil)
	d.log.Warn().Msg("authentication failure, session torn down")
}

// State returns a copy of the canonical snapshot, or nil before login.
func (d *Dashboard) State() *domain.DashboardState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Clone()
}

// Refresh performs a full re-aggregation, equivalent to the initial load.
// Only one full refresh may be in flight at a time.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if !d.refreshing.CompareAndSwap(false, true) {
		return domain.ErrRefreshInFlight
	}
	defer d.refreshing.Store(false)

	state, err := d.agg.LoadAll(ctx)
	if err != nil {
		return err
	}
	d.setState(state)
	return nil
}

// RefreshCurrent is the lightweight periodic refresh: it re-fetches only the
// current health metrics and folds them into the existing state by shallow
// overlay. Fields absent from the response retain their prior values.
func (d *Dashboard) RefreshCurrent(ctx context.Context) error {
	if !d.sessions.Active() {
		return domain.ErrNotAuthenticated
	}
	payload, err := d.transport.CurrentHealth(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == nil || !d.sessions.Active() {
		return domain.ErrNotAuthenticated
	}
	d.state.Health = OverlayHealth(d.state.Health, payload)
	d.state.LoadedAt = d.now()
	return nil
}

// ResolveAlert marks an alert resolved: optimistic local flip paired with
// the remote confirmation call. If the remote call fails, the local flip is
// rolled back and the failure surfaced to the caller. Resolving an id not
// present locally still attempts the remote call and leaves state unchanged.
func (d *Dashboard) ResolveAlert(ctx context.Context, id int) error {
	flipped := d.flipAlert(id, true)

	if err := d.transport.ResolveAlert(ctx, id); err != nil {
		if flipped {
			d.flipAlert(id, false)
		}
		return err
	}
	return nil
}

// flipAlert sets the resolved flag on the alert with the given id and
// reports whether the alert was found.
func (d *Dashboard) flipAlert(id int, resolved bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == nil {
		return false
	}
	i := d.state.AlertByID(id)
	if i < 0 {
		return false
	}
	d.state.Alerts[i].Resolved = resolved
	return true
}

// SubmitHealth sends a manual health-data entry to the service.
func (d *Dashboard) SubmitHealth(ctx context.Context, input ports.HealthInput) error {
	if input == (ports.HealthInput{}) {
		return &domain.ValidationError{Field: "healthData", Reason: "requires at least one metric"}
	}
	if !d.sessions.Active() {
		return domain.ErrNotAuthenticated
	}
	return d.transport.SubmitHealth(ctx, input)
}

// SubmitAcademic sends a manual academic-data entry to the service.
func (d *Dashboard) SubmitAcademic(ctx context.Context, input ports.AcademicInput) error {
	if input == (ports.AcademicInput{}) {
		return &domain.ValidationError{Field: "academicData", Reason: "requires at least one field"}
	}
	if !d.sessions.Active() {
		return domain.ErrNotAuthenticated
	}
	return d.transport.SubmitAcademic(ctx, input)
}

// --- Projections ---

// currentState returns the live state for projection, or ErrNotAuthenticated
// before the first successful load.
func (d *Dashboard) currentState() (*domain.DashboardState, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.state == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return d.state.Clone(), nil
}

func (d *Dashboard) Metrics() (ports.MetricsView, error) {
	s, err := d.currentState()
	if err != nil {
		return ports.MetricsView{}, err
	}
	return ProjectMetrics(s, d.now().UTC()), nil
}

func (d *Dashboard) UserInfo() (ports.UserInfoView, error) {
	if !d.sessions.Active() {
		return ports.UserInfoView{}, domain.ErrNotAuthenticated
	}
	return ProjectUserInfo(d.sessions.User(), d.now().UTC()), nil
}

func (d *Dashboard) AlertsView() ([]ports.AlertView, error) {
	s, err := d.currentState()
	if err != nil {
		return nil, err
	}
	return ProjectAlerts(s, d.now().UTC()), nil
}

func (d *Dashboard) ExamsView() ([]ports.ExamView, error) {
	s, err := d.currentState()
	if err != nil {
		return nil, err
	}
	return ProjectExams(s, d.now().UTC()), nil
}

func (d *Dashboard) DevicesView() ([]ports.DeviceView, error) {
	s, err := d.currentState()
	if err != nil {
		return nil, err
	}
	return ProjectDevices(s, d.now().UTC()), nil
}

func (d *Dashboard) GoalsView() ([]ports.GoalView, error) {
	s, err := d.currentState()
	if err != nil {
		return nil, err
	}
	return ProjectGoals(s), nil
}

func (d *Dashboard) Recommendations() ([]string, error) {
	s, err := d.currentState()
	if err != nil {
		return nil, err
	}
	return ProjectRecommendations(s), nil
}

// Analytics activates the analytics view. Each activation bumps the chart
// slot generations and rebuilds every historical series from scratch; a
// series whose generation went stale before completion is discarded, so
// rapid view switches never render an outdated chart.
func (d *Dashboard) Analytics(ctx context.Context, days int) (*ports.AnalyticsView, error) {
	if !d.sessions.Active() {
		return nil, domain.ErrNotAuthenticated
	}
	if days <= 0 {
		days = 7
	}

	type slotFetch struct {
		slot string
		kind domain.MetricKind
		gen  uint64
	}
	fetches := []slotFetch{
		{SlotHeartRate, domain.MetricHeartRate, d.slots.Activate(SlotHeartRate)},
		{SlotSleep, domain.MetricSleep, d.slots.Activate(SlotSleep)},
		{SlotStress, domain.MetricStress, d.slots.Activate(SlotStress)},
	}

	series := make([]ports.ChartSeries, len(fetches))
	var wg sync.WaitGroup
	wg.Add(len(fetches))
	for i, f := range fetches {
		go func(i int, f slotFetch) {
			defer wg.Done()
			points, err := d.transport.HealthHistory(ctx, f.kind, days)
			if err != nil {
				// Chart fallback: an empty series, never a failed view.
				d.log.Warn().Err(err).Str("metric", string(f.kind)).Msg("history fetch failed")
				points = nil
			}
			series[i] = BuildSeries(f.slot, f.gen, points)
		}(i, f)
	}
	wg.Wait()

	// A newer activation supersedes this one entirely.
	for i, f := range fetches {
		if !d.slots.Current(f.slot, series[i].Generation) {
			return nil, domain.ErrViewSuperseded
		}
	}

	return &ports.AnalyticsView{
		HeartRate: series[0],
		Sleep:     series[1],
		Stress:    series[2],
		Days:      days,
	}, nil
}

// LiveSlots exposes the currently bound chart slots for deterministic
// teardown by the rendering layer.
func (d *Dashboard) LiveSlots() []string {
	return d.slots.Live()
}

// ReleaseAnalytics tears down all chart slots when the analytics view is left.
func (d *Dashboard) ReleaseAnalytics() {
	for _, slot := range d.slots.Live() {
		d.slots.Release(slot)
	}
}

func (d *Dashboard) setState(state *domain.DashboardState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
}
