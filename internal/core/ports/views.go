package ports

// Display-ready projection records. Each is a pure function of DashboardState
// (plus the user profile); no formatting decision is deferred to the
// rendering layer beyond literal text insertion.

// MetricsView is the main dashboard metrics region.
type MetricsView struct {
	HeartRate        string `json:"heartRate"`
	BloodPressure    string `json:"bloodPressure"`
	OxygenSaturation string `json:"oxygenSaturation"`
	StressLevel      string `json:"stressLevel"`
	SleepQuality     string `json:"sleepQuality"`
	HealthScore      int    `json:"healthScore"`
	HealthStatus     string `json:"healthStatus"`
	Steps            string `json:"steps"`
	Calories         string `json:"calories"`
	ActiveMinutes    string `json:"activeMinutes"`
	Mood             string `json:"mood"`
	LastUpdated      string `json:"lastUpdated"`
}

// UserInfoView is the header/profile region.
type UserInfoView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Weight string `json:"weight"`
}

// AlertView is one row of the alerts region.
type AlertView struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	TimeAgo  string `json:"timeAgo"`
	Resolved bool   `json:"resolved"`
}

// ExamView is one row of the upcoming-exams region.
type ExamView struct {
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	Countdown  string `json:"countdown"`
	Difficulty string `json:"difficulty"`
}

// DeviceView is one row of the connected-devices region.
type DeviceView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Battery  string `json:"battery"`
	LastSync string `json:"lastSync"`
}

// GoalView is one row of the goals region.
type GoalView struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Target   string `json:"target"`
	Current  string `json:"current"`
	Progress int    `json:"progress"`
}

// ChartSeries is the data bound to one named chart slot. Generation ties the
// series to the slot activation that requested it; a stale generation means
// the series must be discarded instead of rendered.
type ChartSeries struct {
	Slot       string    `json:"slot"`
	Generation uint64    `json:"generation"`
	Labels     []string  `json:"labels"`
	Values     []float64 `json:"values"`
}

// AnalyticsView is the full analytics region: one series per metric kind,
// rebuilt from scratch on every activation of the view.
type AnalyticsView struct {
	HeartRate ChartSeries `json:"heartRate"`
	Sleep     ChartSeries `json:"sleep"`
	Stress    ChartSeries `json:"stress"`
	Days      int         `json:"days"`
}
