package domain

import "time"

// Domain defaults substituted when a sub-fetch fails. Values mirror the
// placeholder records the upstream service itself serves to brand-new
// accounts, so a fully-defaulted dashboard is indistinguishable from a
// freshly seeded one.

// DefaultHealthSnapshot returns the placeholder current-health record.
func DefaultHealthSnapshot(now time.Time) HealthSnapshot {
	return HealthSnapshot{
		HeartRate:        78,
		BloodPressure:    BloodPressure{Systolic: 118, Diastolic: 76},
		OxygenSaturation: 98,
		StressLevel:      StressLow,
		SleepQuality:     85,
		HealthStatus:     "Excellent",
		StepsCount:       8247,
		CaloriesBurned:   2156,
		ActiveMinutes:    45,
		LastUpdated:      NewTimestamp(now),
	}
}

// DefaultAcademicSummary returns the placeholder academic record.
func DefaultAcademicSummary() AcademicSummary {
	return AcademicSummary{
		CurrentGPA:        3.67,
		StudyHours:        StudyHours{Daily: 4.5, Weekly: 28, Recommended: 35},
		AttendancePercent: 94,
		Assignments:       Assignments{Completed: 12, Pending: 3, Overdue: 1},
		UpcomingExams: []Exam{
			{Subject: "Data Structures", Date: "2025-09-25", Difficulty: "High"},
			{Subject: "Statistics", Date: "2025-09-28", Difficulty: "Medium"},
			{Subject: "Ethics", Date: "2025-10-02", Difficulty: "Low"},
		},
	}
}

// DefaultLifestyleSummary returns the placeholder lifestyle record.
func DefaultLifestyleSummary() LifestyleSummary {
	return LifestyleSummary{
		DailySteps:         8247,
		CaloriesBurned:     2156,
		WaterIntake:        6,
		ScreenTime:         5.2,
		SocialInteractions: 7,
		MoodRating:         7,
		ActiveMinutes:      45,
	}
}

// DefaultPredictionSummary returns the placeholder predictions record.
func DefaultPredictionSummary(now time.Time) PredictionSummary {
	return PredictionSummary{
		BurnoutRisk:      28,
		BurnoutLevel:     "Low",
		PredictedGPA:     3.40,
		PerformanceTrend: "stable",
		HealthTrend:      "stable",
		Recommendations: []string{
			"Maintain regular sleep schedule",
			"Take breaks during study sessions",
			"Stay physically active",
		},
		GeneratedAt: NewTimestamp(now),
	}
}
