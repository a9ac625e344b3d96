package handler

import (
	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email       string  `json:"email"       validate:"required,email"`
	Password    string  `json:"password"    validate:"required,min=6"`
	FirstName   string  `json:"firstName"   validate:"required"`
	LastName    string  `json:"lastName"    validate:"required"`
	DateOfBirth string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string  `json:"gender"`
	Height      float64 `json:"height"      validate:"omitempty,gt=0"`
	Weight      float64 `json:"weight"      validate:"omitempty,gt=0"`
}

func (r registerRequest) toInput() ports.RegisterInput {
	return ports.RegisterInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Height:      r.Height,
		Weight:      r.Weight,
	}
}

type loginResponse struct {
	User *domain.UserProfile `json:"user"`
}

type registerResponse struct {
	UserID string `json:"userId"`
}

// healthDataRequest mirrors ports.HealthInput with range validation. All
// fields are optional but at least one must be present; that rule lives in
// the service, not here.
type healthDataRequest struct {
	HeartRate          *int                  `json:"heartRate"          validate:"omitempty,gt=0,lte=300"`
	BloodPressure      *domain.BloodPressure `json:"bloodPressure"`
	OxygenSaturation   *float64              `json:"oxygenSaturation"   validate:"omitempty,gt=0,lte=100"`
	StressLevel        *int                  `json:"stressLevel"        validate:"omitempty,gte=1,lte=5"`
	SleepDuration      *float64              `json:"sleepDuration"      validate:"omitempty,gte=0,lte=24"`
	SleepQuality       *int                  `json:"sleepQuality"       validate:"omitempty,gte=0,lte=100"`
	StepsCount         *int                  `json:"stepsCount"         validate:"omitempty,gte=0"`
	CaloriesBurned     *int                  `json:"caloriesBurned"     validate:"omitempty,gte=0"`
	WaterIntake        *int                  `json:"waterIntake"        validate:"omitempty,gte=0"`
	ScreenTime         *float64              `json:"screenTime"         validate:"omitempty,gte=0,lte=24"`
	MoodRating         *int                  `json:"moodRating"         validate:"omitempty,gte=1,lte=10"`
	SocialInteractions *int                  `json:"socialInteractions" validate:"omitempty,gte=0"`
}

func (r healthDataRequest) toInput() ports.HealthInput {
	return ports.HealthInput{
		HeartRate:          r.HeartRate,
		BloodPressure:      r.BloodPressure,
		OxygenSaturation:   r.OxygenSaturation,
		StressLevel:        r.StressLevel,
		SleepDuration:      r.SleepDuration,
		SleepQuality:       r.SleepQuality,
		StepsCount:         r.StepsCount,
		CaloriesBurned:     r.CaloriesBurned,
		WaterIntake:        r.WaterIntake,
		ScreenTime:         r.ScreenTime,
		MoodRating:         r.MoodRating,
		SocialInteractions: r.SocialInteractions,
	}
}

type academicDataRequest struct {
	CurrentGPA           *float64 `json:"currentGPA"           validate:"omitempty,gte=0,lte=4"`
	DailyStudyHours      *float64 `json:"dailyStudyHours"      validate:"omitempty,gte=0,lte=24"`
	WeeklyStudyHours     *float64 `json:"weeklyStudyHours"     validate:"omitempty,gte=0,lte=168"`
	AttendancePercentage *float64 `json:"attendancePercentage" validate:"omitempty,gte=0,lte=100"`
	AssignmentsCompleted *int     `json:"assignmentsCompleted" validate:"omitempty,gte=0"`
	AssignmentsPending   *int     `json:"assignmentsPending"   validate:"omitempty,gte=0"`
	AssignmentsOverdue   *int     `json:"assignmentsOverdue"   validate:"omitempty,gte=0"`
}

func (r academicDataRequest) toInput() ports.AcademicInput {
	return ports.AcademicInput{
		CurrentGPA:           r.CurrentGPA,
		DailyStudyHours:      r.DailyStudyHours,
		WeeklyStudyHours:     r.WeeklyStudyHours,
		AttendancePercentage: r.AttendancePercentage,
		AssignmentsCompleted: r.AssignmentsCompleted,
		AssignmentsPending:   r.AssignmentsPending,
		AssignmentsOverdue:   r.AssignmentsOverdue,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}
