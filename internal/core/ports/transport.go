package ports

import (
	"context"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

// RegisterInput carries a new-account request.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string
	Height      float64
	Weight      float64
}

// HealthInput is a manual health-data submission. Pointer fields are omitted
// from the request when nil.
type HealthInput struct {
	HeartRate          *int     `json:"heartRate,omitempty"`
	BloodPressure      *domain.BloodPressure `json:"bloodPressure,omitempty"`
	OxygenSaturation   *float64 `json:"oxygenSaturation,omitempty"`
	StressLevel        *int     `json:"stressLevel,omitempty"`
	SleepDuration      *float64 `json:"sleepDuration,omitempty"`
	SleepQuality       *int     `json:"sleepQuality,omitempty"`
	StepsCount         *int     `json:"stepsCount,omitempty"`
	CaloriesBurned     *int     `json:"caloriesBurned,omitempty"`
	WaterIntake        *int     `json:"waterIntake,omitempty"`
	ScreenTime         *float64 `json:"screenTime,omitempty"`
	MoodRating         *int     `json:"moodRating,omitempty"`
	SocialInteractions *int     `json:"socialInteractions,omitempty"`
}

// AcademicInput is a manual academic-data submission.
type AcademicInput struct {
	CurrentGPA           *float64 `json:"currentGPA,omitempty"`
	DailyStudyHours      *float64 `json:"dailyStudyHours,omitempty"`
	WeeklyStudyHours     *float64 `json:"weeklyStudyHours,omitempty"`
	AttendancePercentage *float64 `json:"attendancePercentage,omitempty"`
	AssignmentsCompleted *int     `json:"assignmentsCompleted,omitempty"`
	AssignmentsPending   *int     `json:"assignmentsPending,omitempty"`
	AssignmentsOverdue   *int     `json:"assignmentsOverdue,omitempty"`
}

// Transport issues authenticated requests against the remote digital-twin
// service. Implementations classify outcomes uniformly: domain.ErrAuthFailed
// for HTTP 401 (after triggering session teardown), *domain.RequestError for
// any other failure.
type Transport interface {
	Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error)
	Register(ctx context.Context, input RegisterInput) (string, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)

	CurrentHealth(ctx context.Context) (*domain.HealthPayload, error)
	HealthHistory(ctx context.Context, kind domain.MetricKind, days int) ([]domain.HistoryPoint, error)
	SubmitHealth(ctx context.Context, input HealthInput) error

	AcademicPerformance(ctx context.Context) (*domain.AcademicPayload, error)
	SubmitAcademic(ctx context.Context, input AcademicInput) error

	Predictions(ctx context.Context) (*domain.PredictionPayload, error)
	Alerts(ctx context.Context, includeResolved bool) ([]domain.Alert, error)
	ResolveAlert(ctx context.Context, id int) error
	Devices(ctx context.Context) ([]domain.Device, error)
	Goals(ctx context.Context) (map[string]domain.Goal, error)
	Lifestyle(ctx context.Context) (*domain.LifestylePayload, error)
}
