package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

func TestLoadAll_AllFetchesFailYieldsDefaultedState(t *testing.T) {
	agg := NewAggregator(&stubTransport{}, activeSessions(), zerolog.Nop())

	state, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("aggregation must absorb sub-fetch failures: %v", err)
	}

	if state.Health.HeartRate != 78 || state.Health.SleepQuality != 85 {
		t.Fatalf("expected default health, got %+v", state.Health)
	}
	if state.Health.HealthStatus != "Excellent" {
		t.Fatalf("expected Excellent status for default vitals, got %q", state.Health.HealthStatus)
	}
	if state.Academic.CurrentGPA != 3.67 || len(state.Academic.UpcomingExams) != 3 {
		t.Fatalf("expected default academic, got %+v", state.Academic)
	}
	if state.Lifestyle.DailySteps != 8247 || state.Lifestyle.MoodRating != 7 {
		t.Fatalf("expected default lifestyle, got %+v", state.Lifestyle)
	}
	if state.Predictions.BurnoutRisk != 28 || len(state.Predictions.Recommendations) != 3 {
		t.Fatalf("expected default predictions, got %+v", state.Predictions)
	}
	if state.Alerts == nil || len(state.Alerts) != 0 {
		t.Fatalf("expected empty non-nil alerts, got %#v", state.Alerts)
	}
	if state.Devices == nil || len(state.Devices) != 0 {
		t.Fatalf("expected empty non-nil devices, got %#v", state.Devices)
	}
	if len(state.Goals) != 4 {
		t.Fatalf("expected 4 synthesized goals, got %d", len(state.Goals))
	}
}

func TestLoadAll_DefaultedStateIsStable(t *testing.T) {
	agg := NewAggregator(&stubTransport{}, activeSessions(), zerolog.Nop())

	first, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	first.LoadedAt = second.LoadedAt
	first.Health.LastUpdated = second.Health.LastUpdated
	first.Predictions.GeneratedAt = second.Predictions.GeneratedAt
	if first.Health != second.Health {
		t.Fatalf("defaulted health differs between loads")
	}
	if len(first.Goals) != len(second.Goals) {
		t.Fatalf("goal sets differ between loads")
	}
	for key, g := range first.Goals {
		if second.Goals[key] != g {
			t.Fatalf("goal %q differs: %+v vs %+v", key, g, second.Goals[key])
		}
	}
}

func TestLoadAll_RequiresSession(t *testing.T) {
	agg := NewAggregator(&stubTransport{}, &stubSessions{}, zerolog.Nop())
	if _, err := agg.LoadAll(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestLoadAll_SessionDiedMidFlightDiscardsMerge(t *testing.T) {
	sessions := activeSessions()
	transport := &stubTransport{
		currentHealthFn: func(ctx context.Context) (*domain.HealthPayload, error) {
			// Simulates an auth teardown while the fan-out is in flight.
			_ = sessions.Clear(ctx)
			return &domain.HealthPayload{HeartRate: intPtr(64)}, nil
		},
	}
	agg := NewAggregator(transport, sessions, zerolog.Nop())

	state, err := agg.LoadAll(context.Background())
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if state != nil {
		t.Fatalf("results of an aggregation that outlived its session must be discarded")
	}
}

func TestLoadAll_BorrowsActivityFromLifestyle(t *testing.T) {
	transport := &stubTransport{
		currentHealthFn: func(ctx context.Context) (*domain.HealthPayload, error) {
			return &domain.HealthPayload{HeartRate: intPtr(64)}, nil
		},
		lifestyleFn: func(ctx context.Context) (*domain.LifestylePayload, error) {
			return &domain.LifestylePayload{
				DailySteps:     intPtr(5000),
				CaloriesBurned: intPtr(1800),
			}, nil
		},
	}
	agg := NewAggregator(transport, activeSessions(), zerolog.Nop())

	state, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if state.Health.HeartRate != 64 {
		t.Fatalf("present heart rate must win, got %d", state.Health.HeartRate)
	}
	if state.Health.StepsCount != 5000 {
		t.Fatalf("steps must be borrowed from lifestyle, got %d", state.Health.StepsCount)
	}
	if state.Health.CaloriesBurned != 1800 {
		t.Fatalf("calories must be borrowed from lifestyle, got %d", state.Health.CaloriesBurned)
	}
	// Active minutes came from neither response: default applies.
	if state.Health.ActiveMinutes != 45 {
		t.Fatalf("active minutes must default, got %d", state.Health.ActiveMinutes)
	}
}

func TestLoadAll_BorrowsLifestyleFromHealth(t *testing.T) {
	transport := &stubTransport{
		currentHealthFn: func(ctx context.Context) (*domain.HealthPayload, error) {
			return &domain.HealthPayload{StepsCount: intPtr(12000)}, nil
		},
	}
	agg := NewAggregator(transport, activeSessions(), zerolog.Nop())

	state, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Lifestyle.DailySteps != 12000 {
		t.Fatalf("lifestyle steps must be borrowed from health, got %d", state.Lifestyle.DailySteps)
	}
	if state.Lifestyle.WaterIntake != 6 {
		t.Fatalf("water intake must default, got %d", state.Lifestyle.WaterIntake)
	}
}

func TestLoadAll_PresentGoalsAreNotSynthesized(t *testing.T) {
	transport := &stubTransport{
		goalsFn: func(ctx context.Context) (map[string]domain.Goal, error) {
			return map[string]domain.Goal{
				"meditation": {Target: 10, Current: 4, Progress: 40},
			}, nil
		},
	}
	agg := NewAggregator(transport, activeSessions(), zerolog.Nop())

	state, err := agg.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Goals) != 1 {
		t.Fatalf("service-provided goals must be kept wholesale, got %d entries", len(state.Goals))
	}
	if g := state.Goals["meditation"]; g.Progress != 40 {
		t.Fatalf("unexpected goal: %+v", g)
	}
}

func TestSynthesizeGoals(t *testing.T) {
	lifestyle := domain.DefaultLifestyleSummary()
	academic := domain.DefaultAcademicSummary()
	goals := SynthesizeGoals(lifestyle, academic, 2)

	if len(goals) != 4 {
		t.Fatalf("expected 4 goals, got %d", len(goals))
	}
	cases := []struct {
		key      string
		target   float64
		current  float64
		progress int
	}{
		{domain.GoalSleep, 8.0, 7.2, 90},
		{domain.GoalSteps, 10000, 8247, 82},
		{domain.GoalStudy, 6.0, 4.5, 75},
		{domain.GoalStress, 2, 2, 50},
	}
	for _, tc := range cases {
		g, ok := goals[tc.key]
		if !ok {
			t.Fatalf("missing goal %q", tc.key)
		}
		if g.Target != tc.target || g.Current != tc.current || g.Progress != tc.progress {
			t.Fatalf("%q: expected {%.1f %.1f %d}, got %+v", tc.key, tc.target, tc.current, tc.progress, g)
		}
	}
	for key, g := range goals {
		if g.Progress < 0 || g.Progress > 100 {
			t.Fatalf("goal %q progress out of range: %d", key, g.Progress)
		}
	}
}

func TestMergePredictions_PartialPayload(t *testing.T) {
	pp := &domain.PredictionPayload{}
	pp.BurnoutRisk = &struct {
		RiskPercentage int    `json:"risk_percentage"`
		RiskLevel      string `json:"risk_level"`
	}{RiskPercentage: 71, RiskLevel: "High"}

	out := mergePredictions(pp, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	if out.BurnoutRisk != 71 || out.BurnoutLevel != "High" {
		t.Fatalf("present burnout must win: %+v", out)
	}
	if out.PredictedGPA != 3.40 || out.HealthTrend != "stable" {
		t.Fatalf("absent sections must default: %+v", out)
	}
	if len(out.Recommendations) != 3 {
		t.Fatalf("absent recommendations must default, got %d", len(out.Recommendations))
	}
}

func TestOverlayHealth_RetainsAbsentFields(t *testing.T) {
	prev := domain.DefaultHealthSnapshot(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	overlaid := OverlayHealth(prev, &domain.HealthPayload{
		HeartRate:   intPtr(101),
		StressLevel: strPtr(domain.StressHigh),
	})

	if overlaid.HeartRate != 101 || overlaid.StressLevel != domain.StressHigh {
		t.Fatalf("refreshed fields must replace prior values: %+v", overlaid)
	}
	if overlaid.StepsCount != prev.StepsCount || overlaid.SleepQuality != prev.SleepQuality {
		t.Fatalf("absent fields must be retained: %+v", overlaid)
	}
	// Status re-derives from the overlaid vitals: -15 heart rate, -15 stress.
	if overlaid.HealthStatus != "Fair" {
		t.Fatalf("expected re-derived Fair status, got %q", overlaid.HealthStatus)
	}

	if got := OverlayHealth(prev, nil); got != prev {
		t.Fatalf("nil payload must leave the snapshot untouched")
	}
}
