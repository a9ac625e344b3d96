package domain

import "time"

// DashboardState is the canonical merged snapshot produced by aggregation.
// Invariant: every field is populated, either from a successful fetch or from
// its documented domain default, so consumers never branch on absence.
//
// The state is owned and mutated exclusively by the dashboard service; all
// other components receive copies via Clone.
type DashboardState struct {
	Health      HealthSnapshot    `json:"currentHealthMetrics"`
	Academic    AcademicSummary   `json:"academicData"`
	Lifestyle   LifestyleSummary  `json:"lifestyle"`
	Predictions PredictionSummary `json:"predictions"`
	Alerts      []Alert           `json:"alerts"`
	Devices     []Device          `json:"devices"`
	Goals       map[string]Goal   `json:"goals"`
	LoadedAt    time.Time         `json:"loadedAt"`
}

// Clone returns a copy deep enough that the receiver's slices and map cannot
// be mutated through it.
func (s *DashboardState) Clone() *DashboardState {
	if s == nil {
		return nil
	}
	out := *s

	out.Alerts = make([]Alert, len(s.Alerts))
	copy(out.Alerts, s.Alerts)

	out.Devices = make([]Device, len(s.Devices))
	copy(out.Devices, s.Devices)

	out.Goals = make(map[string]Goal, len(s.Goals))
	for k, g := range s.Goals {
		out.Goals[k] = g
	}

	out.Academic.UpcomingExams = make([]Exam, len(s.Academic.UpcomingExams))
	copy(out.Academic.UpcomingExams, s.Academic.UpcomingExams)

	out.Predictions.Recommendations = make([]string, len(s.Predictions.Recommendations))
	copy(out.Predictions.Recommendations, s.Predictions.Recommendations)

	return &out
}

// AlertByID returns the index of the alert with the given id, or -1.
func (s *DashboardState) AlertByID(id int) int {
	for i := range s.Alerts {
		if s.Alerts[i].ID == id {
			return i
		}
	}
	return -1
}
