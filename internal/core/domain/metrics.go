package domain

// Stress level labels as reported by the upstream service. The numeric scale
// behind them is 1 (Very Low) through 5 (Very High).
const (
	StressVeryLow  = "Very Low"
	StressLow      = "Low"
	StressModerate = "Moderate"
	StressHigh     = "High"
	StressVeryHigh = "Very High"
)

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// HealthSnapshot is the merged "current health" section of DashboardState.
// Every field is always populated, either from the service or from the
// documented placeholder record.
type HealthSnapshot struct {
	HeartRate        int           `json:"heartRate"`
	BloodPressure    BloodPressure `json:"bloodPressure"`
	OxygenSaturation float64       `json:"oxygenSaturation"`
	StressLevel      string        `json:"stressLevel"`
	SleepQuality     int           `json:"sleepQuality"`
	HealthStatus     string        `json:"healthStatus"`
	StepsCount       int           `json:"stepsCount"`
	CaloriesBurned   int           `json:"caloriesBurned"`
	ActiveMinutes    int           `json:"activeMinutes"`
	LastUpdated      Timestamp     `json:"lastUpdated"`
}

// HealthPayload is the raw current-health response. Nil fields were omitted
// by the service and resolve through the fallback chain during merge.
type HealthPayload struct {
	HeartRate        *int           `json:"heartRate"`
	BloodPressure    *BloodPressure `json:"bloodPressure"`
	OxygenSaturation *float64       `json:"oxygenSaturation"`
	StressLevel      *string        `json:"stressLevel"`
	SleepQuality     *int           `json:"sleepQuality"`
	HealthStatus     *string        `json:"healthStatus"`
	StepsCount       *int           `json:"stepsCount"`
	CaloriesBurned   *int           `json:"caloriesBurned"`
	ActiveMinutes    *int           `json:"activeMinutes"`
	LastUpdated      *Timestamp     `json:"lastUpdated"`
}

// LifestyleSummary is the merged lifestyle section.
type LifestyleSummary struct {
	DailySteps         int     `json:"dailySteps"`
	CaloriesBurned     int     `json:"caloriesBurned"`
	WaterIntake        int     `json:"waterIntake"`
	ScreenTime         float64 `json:"screenTime"`
	SocialInteractions int     `json:"socialInteractions"`
	MoodRating         int     `json:"moodRating"`
	ActiveMinutes      int     `json:"activeMinutes"`
}

// LifestylePayload is the raw lifestyle response.
type LifestylePayload struct {
	DailySteps         *int     `json:"dailySteps"`
	CaloriesBurned     *int     `json:"caloriesBurned"`
	WaterIntake        *int     `json:"waterIntake"`
	ScreenTime         *float64 `json:"screenTime"`
	SocialInteractions *int     `json:"socialInteractions"`
	MoodRating         *int     `json:"moodRating"`
	ActiveMinutes      *int     `json:"activeMinutes"`
}

// StudyHours groups daily and weekly study load with the recommended weekly
// load surfaced next to it.
type StudyHours struct {
	Daily       float64 `json:"daily"`
	Weekly      float64 `json:"weekly"`
	Recommended float64 `json:"recommended"`
}

// Assignments is the completed/pending/overdue breakdown.
type Assignments struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// Exam is one upcoming exam entry.
type Exam struct {
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
}

// AcademicSummary is the merged academic section.
type AcademicSummary struct {
	CurrentGPA        float64     `json:"currentGPA"`
	StudyHours        StudyHours  `json:"studyHours"`
	AttendancePercent float64     `json:"attendancePercent"`
	Assignments       Assignments `json:"assignments"`
	UpcomingExams     []Exam      `json:"upcomingExams"`
}

// AcademicPayload is the raw academic-performance response.
type AcademicPayload struct {
	CurrentGPA *float64 `json:"currentGPA"`
	StudyHours *struct {
		Daily       float64 `json:"daily"`
		Weekly      float64 `json:"weekly"`
		Recommended float64 `json:"recommended"`
	} `json:"studyHours"`
	Attendance *struct {
		Percentage float64 `json:"percentage"`
	} `json:"attendance"`
	Assignments *struct {
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
		Overdue   int `json:"overdue"`
	} `json:"assignments"`
	UpcomingExams []Exam `json:"upcomingExams"`
}

// PredictionSummary is the merged predictions section.
type PredictionSummary struct {
	BurnoutRisk      int       `json:"burnoutRisk"`
	BurnoutLevel     string    `json:"burnoutLevel"`
	PredictedGPA     float64   `json:"predictedGPA"`
	PerformanceTrend string    `json:"performanceTrend"`
	HealthTrend      string    `json:"healthTrend"`
	Recommendations  []string  `json:"recommendations"`
	GeneratedAt      Timestamp `json:"generatedAt"`
}

// PredictionPayload is the raw predictions response.
type PredictionPayload struct {
	BurnoutRisk *struct {
		RiskPercentage int    `json:"risk_percentage"`
		RiskLevel      string `json:"risk_level"`
	} `json:"burnoutRisk"`
	AcademicPerformance *struct {
		PredictedGPA     float64 `json:"predicted_gpa"`
		PerformanceTrend string  `json:"performance_trend"`
	} `json:"academicPerformance"`
	HealthTrend *struct {
		Trend string `json:"trend"`
	} `json:"healthTrend"`
	Recommendations []string   `json:"recommendations"`
	GeneratedAt     *Timestamp `json:"generatedAt"`
}

// MetricKind identifies a historical time-series.
type MetricKind string

const (
	MetricHeartRate MetricKind = "heart_rate"
	MetricSleep     MetricKind = "sleep"
	MetricStress    MetricKind = "stress"
)

// HistoryPoint is one normalized sample of a historical series. Value carries
// the bpm, total sleep hours, or stress level depending on the metric kind.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
