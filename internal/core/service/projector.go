package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// Named chart slots bound by the rendering collaborator. A slot's widget is
// fully replaced on every activation; the generation counter makes teardown
// of the old instance deterministic.
const (
	SlotHeartRate = "chart:heart_rate"
	SlotSleep     = "chart:sleep"
	SlotStress    = "chart:stress"
)

// SlotRegistry tracks which named chart slots are live and the generation of
// their current binding. Activating a slot invalidates every series produced
// for an earlier generation.
type SlotRegistry struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func NewSlotRegistry() *SlotRegistry {
	return &SlotRegistry{gens: make(map[string]uint64)}
}

// Activate marks the slot live and returns the new generation.
func (r *SlotRegistry) Activate(slot string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gens[slot]++
	return r.gens[slot]
}

// Current reports whether gen is still the live generation for the slot.
// A released or never-activated slot has no live generation.
func (r *SlotRegistry) Current(slot string, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gens[slot]
	return ok && g == gen
}

// Release tears down the slot; any in-flight series for it becomes stale.
func (r *SlotRegistry) Release(slot string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.gens, slot)
}

// Live returns the names of all currently bound slots.
func (r *SlotRegistry) Live() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.gens))
	for slot := range r.gens {
		out = append(out, slot)
	}
	return out
}

// ProjectMetrics renders the main dashboard metrics region.
func ProjectMetrics(s *domain.DashboardState, now time.Time) ports.MetricsView {
	h := s.Health
	score := HealthScore(h)
	return ports.MetricsView{
		HeartRate:        fmt.Sprintf("%d bpm", h.HeartRate),
		BloodPressure:    fmt.Sprintf("%d/%d", h.BloodPressure.Systolic, h.BloodPressure.Diastolic),
		OxygenSaturation: fmt.Sprintf("%.0f%%", h.OxygenSaturation),
		StressLevel:      h.StressLevel,
		SleepQuality:     fmt.Sprintf("%d/100", h.SleepQuality),
		HealthScore:      score,
		HealthStatus:     h.HealthStatus,
		Steps:            fmt.Sprintf("%d", h.StepsCount),
		Calories:         fmt.Sprintf("%d kcal", h.CaloriesBurned),
		ActiveMinutes:    fmt.Sprintf("%d min", h.ActiveMinutes),
		Mood:             MoodBand(s.Lifestyle.MoodRating),
		LastUpdated:      FormatTimeAgo(h.LastUpdated.Time, now),
	}
}

// ProjectUserInfo renders the profile header region.
func ProjectUserInfo(u *domain.UserProfile, now time.Time) ports.UserInfoView {
	if u == nil {
		return ports.UserInfoView{Name: "Student"}
	}
	view := ports.UserInfoView{
		Name:   u.FullName(),
		Email:  u.Email,
		Age:    Age(u.DateOfBirth, now),
		Gender: u.Gender,
	}
	if u.Height > 0 {
		view.Height = fmt.Sprintf("%.0f cm", u.Height)
	}
	if u.Weight > 0 {
		view.Weight = fmt.Sprintf("%.0f kg", u.Weight)
	}
	return view
}

// ProjectAlerts renders the alerts region with relative timestamps.
func ProjectAlerts(s *domain.DashboardState, now time.Time) []ports.AlertView {
	out := make([]ports.AlertView, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		out = append(out, ports.AlertView{
			ID:       a.ID,
			Type:     a.Type,
			Title:    a.Title,
			Message:  a.Message,
			Priority: a.Priority,
			TimeAgo:  FormatTimeAgo(a.CreatedAt.Time, now),
			Resolved: a.Resolved,
		})
	}
	return out
}

// ProjectExams renders the upcoming-exams region with a day countdown.
func ProjectExams(s *domain.DashboardState, now time.Time) []ports.ExamView {
	out := make([]ports.ExamView, 0, len(s.Academic.UpcomingExams))
	for _, e := range s.Academic.UpcomingExams {
		view := ports.ExamView{
			Subject:    e.Subject,
			Date:       e.Date,
			Difficulty: e.Difficulty,
		}
		if d, err := time.Parse("2006-01-02", e.Date); err == nil {
			days := int(d.Sub(now).Hours() / 24)
			switch {
			case days < 0:
				view.Countdown = "past"
			case days == 0:
				view.Countdown = "today"
			case days == 1:
				view.Countdown = "in 1 day"
			default:
				view.Countdown = fmt.Sprintf("in %d days", days)
			}
		}
		out = append(out, view)
	}
	return out
}

// ProjectDevices renders the connected-devices region.
func ProjectDevices(s *domain.DashboardState, now time.Time) []ports.DeviceView {
	out := make([]ports.DeviceView, 0, len(s.Devices))
	for _, d := range s.Devices {
		view := ports.DeviceView{
			ID:       d.ID,
			Name:     d.Name,
			Type:     d.Type,
			Status:   d.Status,
			Battery:  "—",
			LastSync: "never",
		}
		if d.Battery != nil {
			view.Battery = fmt.Sprintf("%d%%", *d.Battery)
		}
		if d.LastSync != nil && !d.LastSync.IsZero() {
			view.LastSync = FormatTimeAgo(d.LastSync.Time, now)
		}
		out = append(out, view)
	}
	return out
}

// goalLabels maps goal keys to their display labels.
var goalLabels = map[string]string{
	domain.GoalSleep:  "Sleep",
	domain.GoalSteps:  "Daily Steps",
	domain.GoalStudy:  "Study Hours",
	domain.GoalStress: "Stress Level",
}

// goalOrder fixes the display order of the canonical goals; unknown keys
// follow in map iteration order.
var goalOrder = []string{domain.GoalSleep, domain.GoalSteps, domain.GoalStudy, domain.GoalStress}

// ProjectGoals renders the goals region in canonical order.
func ProjectGoals(s *domain.DashboardState) []ports.GoalView {
	out := make([]ports.GoalView, 0, len(s.Goals))
	seen := make(map[string]bool, len(s.Goals))

	add := func(key string, g domain.Goal) {
		label := goalLabels[key]
		if label == "" {
			label = key
		}
		out = append(out, ports.GoalView{
			Key:      key,
			Label:    label,
			Target:   trimFloat(g.Target),
			Current:  trimFloat(g.Current),
			Progress: g.Progress,
		})
		seen[key] = true
	}

	for _, key := range goalOrder {
		if g, ok := s.Goals[key]; ok {
			add(key, g)
		}
	}
	for key, g := range s.Goals {
		if !seen[key] {
			add(key, g)
		}
	}
	return out
}

// ProjectRecommendations renders the recommendations region.
func ProjectRecommendations(s *domain.DashboardState) []string {
	out := make([]string, len(s.Predictions.Recommendations))
	copy(out, s.Predictions.Recommendations)
	return out
}

// BuildSeries turns normalized history points into the series bound to a
// chart slot. The caller supplies the generation obtained at activation;
// consumers must discard the series if the generation has gone stale.
func BuildSeries(slot string, gen uint64, points []domain.HistoryPoint) ports.ChartSeries {
	series := ports.ChartSeries{
		Slot:       slot,
		Generation: gen,
		Labels:     make([]string, 0, len(points)),
		Values:     make([]float64, 0, len(points)),
	}
	for _, p := range points {
		series.Labels = append(series.Labels, p.Date)
		series.Values = append(series.Values, p.Value)
	}
	return series
}

// trimFloat renders a float without a trailing ".0" for whole values.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
