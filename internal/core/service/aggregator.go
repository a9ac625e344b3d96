package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/api/metrics"
	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// Aggregator fans out the seven domain fetches concurrently and fans the
// results back into one canonical DashboardState. A failed sub-fetch never
// fails the aggregation: each domain has a fixed fallback, and the merge
// resolves every field through an explicit Present → Borrowed → Default chain.
type Aggregator struct {
	transport ports.Transport
	sessions  ports.SessionStore
	log       zerolog.Logger
	now       func() time.Time
}

func NewAggregator(transport ports.Transport, sessions ports.SessionStore, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		transport: transport,
		sessions:  sessions,
		log:       log,
		now:       time.Now,
	}
}

// fetched holds the raw results of the fan-out. Nil / empty entries mean the
// fetch failed and the domain default applies.
type fetched struct {
	health      *domain.HealthPayload
	academic    *domain.AcademicPayload
	predictions *domain.PredictionPayload
	alerts      []domain.Alert
	devices     []domain.Device
	goals       map[string]domain.Goal
	lifestyle   *domain.LifestylePayload
}

// LoadAll performs the full fan-out/fan-in aggregation. It returns once all
// seven sub-fetches have settled, successfully or by fallback. The merge is
// committed only if the session is still valid afterwards; results of an
// aggregation that outlived its session are discarded.
func (a *Aggregator) LoadAll(ctx context.Context) (*domain.DashboardState, error) {
	if !a.sessions.Active() {
		return nil, domain.ErrNotAuthenticated
	}
	start := a.now()

	var f fetched
	var wg sync.WaitGroup
	wg.Add(7)

	go func() {
		defer wg.Done()
		f.health = fetchOrNil(a, "health", func() (*domain.HealthPayload, error) {
			return a.transport.CurrentHealth(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		f.academic = fetchOrNil(a, "academic", func() (*domain.AcademicPayload, error) {
			return a.transport.AcademicPerformance(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		f.predictions = fetchOrNil(a, "predictions", func() (*domain.PredictionPayload, error) {
			return a.transport.Predictions(ctx)
		})
	}()
	go func() {
		defer wg.Done()
		alerts, err := a.transport.Alerts(ctx, false)
		if err != nil {
			a.fallback("alerts", err)
			return
		}
		f.alerts = alerts
	}()
	go func() {
		defer wg.Done()
		devices, err := a.transport.Devices(ctx)
		if err != nil {
			a.fallback("devices", err)
			return
		}
		f.devices = devices
	}()
	go func() {
		defer wg.Done()
		goals, err := a.transport.Goals(ctx)
		if err != nil {
			a.fallback("goals", err)
			return
		}
		f.goals = goals
	}()
	go func() {
		defer wg.Done()
		f.lifestyle = fetchOrNil(a, "lifestyle", func() (*domain.LifestylePayload, error) {
			return a.transport.Lifestyle(ctx)
		})
	}()

	wg.Wait()
	metrics.AggregationDuration.Observe(a.now().Sub(start).Seconds())

	if !a.sessions.Active() {
		metrics.AggregationsTotal.WithLabelValues("discarded").Inc()
		return nil, domain.ErrNotAuthenticated
	}

	state := a.merge(f)
	metrics.AggregationsTotal.WithLabelValues("committed").Inc()
	return state, nil
}

// fetchOrNil runs one payload fetch, absorbing any failure into a nil result.
func fetchOrNil[T any](a *Aggregator, name string, fetch func() (*T, error)) *T {
	payload, err := fetch()
	if err != nil {
		a.fallback(name, err)
		return nil
	}
	return payload
}

// fallback records that a sub-fetch failed and its domain default applies.
// Diagnostic only; the aggregation proceeds regardless.
func (a *Aggregator) fallback(name string, err error) {
	metrics.FetchFallbacksTotal.WithLabelValues(name).Inc()
	a.log.Warn().Err(err).Str("domain", name).Msg("sub-fetch failed, using domain default")
}

// merge builds the canonical state. Every field resolves to a concrete value
// under the Present → Borrowed → Default precedence.
func (a *Aggregator) merge(f fetched) *domain.DashboardState {
	now := a.now()
	health := a.mergeHealth(f.health, f.lifestyle, now)
	lifestyle := mergeLifestyle(f.lifestyle, f.health)
	academic := mergeAcademic(f.academic)

	goals := f.goals
	if len(goals) == 0 {
		// Full-record fallback: an empty goal mapping is replaced wholesale
		// with a synthesized set, not defaulted per field.
		goals = SynthesizeGoals(lifestyle, academic, StressScale(health.StressLevel))
	}

	alerts := f.alerts
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	devices := f.devices
	if devices == nil {
		devices = []domain.Device{}
	}

	return &domain.DashboardState{
		Health:      health,
		Academic:    academic,
		Lifestyle:   lifestyle,
		Predictions: mergePredictions(f.predictions, now),
		Alerts:      alerts,
		Devices:     devices,
		Goals:       goals,
		LoadedAt:    now,
	}
}

func (a *Aggregator) mergeHealth(hp *domain.HealthPayload, lp *domain.LifestylePayload, now time.Time) domain.HealthSnapshot {
	def := domain.DefaultHealthSnapshot(now)
	if hp == nil {
		hp = &domain.HealthPayload{}
	}
	if lp == nil {
		lp = &domain.LifestylePayload{}
	}

	out := domain.HealthSnapshot{
		HeartRate:        domain.PickValue(def.HeartRate, domain.Present(hp.HeartRate)),
		BloodPressure:    domain.PickValue(def.BloodPressure, domain.Present(hp.BloodPressure)),
		OxygenSaturation: domain.PickValue(def.OxygenSaturation, domain.Present(hp.OxygenSaturation)),
		StressLevel:      domain.PickValue(def.StressLevel, domain.Present(hp.StressLevel)),
		SleepQuality:     domain.PickValue(def.SleepQuality, domain.Present(hp.SleepQuality)),
		StepsCount:       domain.PickValue(def.StepsCount, domain.Present(hp.StepsCount), domain.Borrowed(lp.DailySteps)),
		CaloriesBurned:   domain.PickValue(def.CaloriesBurned, domain.Present(hp.CaloriesBurned), domain.Borrowed(lp.CaloriesBurned)),
		ActiveMinutes:    domain.PickValue(def.ActiveMinutes, domain.Present(hp.ActiveMinutes), domain.Borrowed(lp.ActiveMinutes)),
		LastUpdated:      domain.PickValue(def.LastUpdated, domain.Present(hp.LastUpdated)),
	}

	// Status is derived from the merged vitals when the service did not
	// classify it itself.
	if hp.HealthStatus != nil {
		out.HealthStatus = *hp.HealthStatus
	} else {
		out.HealthStatus = HealthStatus(HealthScore(out))
	}
	return out
}

func mergeLifestyle(lp *domain.LifestylePayload, hp *domain.HealthPayload) domain.LifestyleSummary {
	def := domain.DefaultLifestyleSummary()
	if lp == nil {
		lp = &domain.LifestylePayload{}
	}
	if hp == nil {
		hp = &domain.HealthPayload{}
	}
	return domain.LifestyleSummary{
		DailySteps:         domain.PickValue(def.DailySteps, domain.Present(lp.DailySteps), domain.Borrowed(hp.StepsCount)),
		CaloriesBurned:     domain.PickValue(def.CaloriesBurned, domain.Present(lp.CaloriesBurned), domain.Borrowed(hp.CaloriesBurned)),
		WaterIntake:        domain.PickValue(def.WaterIntake, domain.Present(lp.WaterIntake)),
		ScreenTime:         domain.PickValue(def.ScreenTime, domain.Present(lp.ScreenTime)),
		SocialInteractions: domain.PickValue(def.SocialInteractions, domain.Present(lp.SocialInteractions)),
		MoodRating:         domain.PickValue(def.MoodRating, domain.Present(lp.MoodRating)),
		ActiveMinutes:      domain.PickValue(def.ActiveMinutes, domain.Present(lp.ActiveMinutes), domain.Borrowed(hp.ActiveMinutes)),
	}
}

func mergeAcademic(ap *domain.AcademicPayload) domain.AcademicSummary {
	def := domain.DefaultAcademicSummary()
	if ap == nil {
		return def
	}
	out := def
	if ap.CurrentGPA != nil {
		out.CurrentGPA = *ap.CurrentGPA
	}
	if ap.StudyHours != nil {
		out.StudyHours.Daily = ap.StudyHours.Daily
		out.StudyHours.Weekly = ap.StudyHours.Weekly
		if ap.StudyHours.Recommended > 0 {
			out.StudyHours.Recommended = ap.StudyHours.Recommended
		}
	}
	if ap.Attendance != nil {
		out.AttendancePercent = ap.Attendance.Percentage
	}
	if ap.Assignments != nil {
		out.Assignments = domain.Assignments{
			Completed: ap.Assignments.Completed,
			Pending:   ap.Assignments.Pending,
			Overdue:   ap.Assignments.Overdue,
		}
	}
	if len(ap.UpcomingExams) > 0 {
		out.UpcomingExams = ap.UpcomingExams
	}
	return out
}

func mergePredictions(pp *domain.PredictionPayload, now time.Time) domain.PredictionSummary {
	def := domain.DefaultPredictionSummary(now)
	if pp == nil {
		return def
	}
	out := def
	if pp.BurnoutRisk != nil {
		out.BurnoutRisk = pp.BurnoutRisk.RiskPercentage
		out.BurnoutLevel = pp.BurnoutRisk.RiskLevel
	}
	if pp.AcademicPerformance != nil {
		out.PredictedGPA = pp.AcademicPerformance.PredictedGPA
		out.PerformanceTrend = pp.AcademicPerformance.PerformanceTrend
	}
	if pp.HealthTrend != nil {
		out.HealthTrend = pp.HealthTrend.Trend
	}
	if len(pp.Recommendations) > 0 {
		out.Recommendations = pp.Recommendations
	}
	if pp.GeneratedAt != nil {
		out.GeneratedAt = *pp.GeneratedAt
	}
	return out
}

// SynthesizeGoals builds the default four-goal set, seeded from values the
// aggregation already knows. Targets are fixed; progress is computed locally.
func SynthesizeGoals(lifestyle domain.LifestyleSummary, academic domain.AcademicSummary, stressLevel int) map[string]domain.Goal {
	goals := map[string]domain.Goal{
		domain.GoalSleep:  {Target: 8.0, Current: 7.2},
		domain.GoalSteps:  {Target: 10000, Current: float64(lifestyle.DailySteps)},
		domain.GoalStudy:  {Target: 6.0, Current: academic.StudyHours.Daily},
		domain.GoalStress: {Target: 2, Current: float64(stressLevel)},
	}
	for key, g := range goals {
		g.Progress = GoalProgress(key, g.Target, g.Current)
		goals[key] = g
	}
	return goals
}

// OverlayHealth folds a lightweight current-metrics refresh into an existing
// snapshot: fields present in the refresh replace the prior value, absent
// fields are retained unchanged.
func OverlayHealth(prev domain.HealthSnapshot, hp *domain.HealthPayload) domain.HealthSnapshot {
	if hp == nil {
		return prev
	}
	out := domain.HealthSnapshot{
		HeartRate:        domain.PickValue(prev.HeartRate, domain.Present(hp.HeartRate)),
		BloodPressure:    domain.PickValue(prev.BloodPressure, domain.Present(hp.BloodPressure)),
		OxygenSaturation: domain.PickValue(prev.OxygenSaturation, domain.Present(hp.OxygenSaturation)),
		StressLevel:      domain.PickValue(prev.StressLevel, domain.Present(hp.StressLevel)),
		SleepQuality:     domain.PickValue(prev.SleepQuality, domain.Present(hp.SleepQuality)),
		StepsCount:       domain.PickValue(prev.StepsCount, domain.Present(hp.StepsCount)),
		CaloriesBurned:   domain.PickValue(prev.CaloriesBurned, domain.Present(hp.CaloriesBurned)),
		ActiveMinutes:    domain.PickValue(prev.ActiveMinutes, domain.Present(hp.ActiveMinutes)),
		LastUpdated:      domain.PickValue(prev.LastUpdated, domain.Present(hp.LastUpdated)),
	}
	if hp.HealthStatus != nil {
		out.HealthStatus = *hp.HealthStatus
	} else {
		out.HealthStatus = HealthStatus(HealthScore(out))
	}
	return out
}
