package service

import (
	"fmt"
	"math"
	"time"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

// Derived-metric calculators. All pure and deterministic: no clock access
// beyond explicit arguments, no network, no mutation. Missing optional
// inputs are substituted with the same domain defaults the aggregation
// engine uses, never rejected.

// StressScale maps a categorical stress label to its 1-5 numeric level.
// Unrecognized or empty labels map to 2 (Low).
func StressScale(label string) int {
	switch label {
	case domain.StressVeryLow:
		return 1
	case domain.StressLow:
		return 2
	case domain.StressModerate:
		return 3
	case domain.StressHigh:
		return 4
	case domain.StressVeryHigh:
		return 5
	default:
		return 2
	}
}

// StressLabel is the inverse of StressScale. Out-of-range levels yield "Unknown".
func StressLabel(level int) string {
	switch level {
	case 1:
		return domain.StressVeryLow
	case 2:
		return domain.StressLow
	case 3:
		return domain.StressModerate
	case 4:
		return domain.StressHigh
	case 5:
		return domain.StressVeryHigh
	default:
		return "Unknown"
	}
}

// HealthScore computes the 0-100 composite score. Penalties are additive and
// independent per vital:
//
//	heart rate   -15 outside [60,100], else -5 above 90
//	blood press. -20 above 140/90, else -10 above 130/80
//	SpO2         -25 below 95, else -10 below 98
//	sleep        -20 below 60, else -10 below 80
//	stress       -15 at level >= 4, else -8 at level >= 3
func HealthScore(h domain.HealthSnapshot) int {
	h = scoreInputs(h)
	score := 100

	if h.HeartRate < 60 || h.HeartRate > 100 {
		score -= 15
	} else if h.HeartRate > 90 {
		score -= 5
	}

	if bp := h.BloodPressure; bp.Systolic > 0 && bp.Diastolic > 0 {
		if bp.Systolic > 140 || bp.Diastolic > 90 {
			score -= 20
		} else if bp.Systolic > 130 || bp.Diastolic > 80 {
			score -= 10
		}
	}

	if spo2 := h.OxygenSaturation; spo2 > 0 {
		if spo2 < 95 {
			score -= 25
		} else if spo2 < 98 {
			score -= 10
		}
	}

	if h.SleepQuality < 60 {
		score -= 20
	} else if h.SleepQuality < 80 {
		score -= 10
	}

	if level := StressScale(h.StressLevel); level >= 4 {
		score -= 15
	} else if level >= 3 {
		score -= 8
	}

	return clamp(score, 0, 100)
}

// scoreInputs substitutes domain defaults for absent vitals so the score
// never penalizes a metric that simply was not measured.
func scoreInputs(h domain.HealthSnapshot) domain.HealthSnapshot {
	def := domain.DefaultHealthSnapshot(time.Time{})
	if h.HeartRate == 0 {
		h.HeartRate = def.HeartRate
	}
	if h.SleepQuality == 0 {
		h.SleepQuality = def.SleepQuality
	}
	if h.StressLevel == "" {
		h.StressLevel = def.StressLevel
	}
	return h
}

// HealthStatus buckets a composite score into its qualitative band.
func HealthStatus(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}

// MoodBand classifies a 1-10 mood rating into one of five bands, inclusive
// at the lower boundary of each.
func MoodBand(rating int) string {
	switch {
	case rating >= 9:
		return "Excellent"
	case rating >= 7:
		return "Good"
	case rating >= 5:
		return "Okay"
	case rating >= 3:
		return "Low"
	default:
		return "Very Low"
	}
}

// FormatTimeAgo buckets the elapsed time between t and now using integer
// floor division: "just now" under a minute, then minutes, hours, days.
func FormatTimeAgo(t, now time.Time) string {
	secs := int64(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}

// GoalProgress computes the 0-100 progress percentage for a goal. Stress is
// inverted (lower is better); everything else is a capped ratio.
func GoalProgress(key string, target, current float64) int {
	if target == 0 {
		return 0
	}
	var progress float64
	if key == domain.GoalStress {
		progress = (target - current + 1) / target * 100
		if progress < 0 {
			progress = 0
		}
	} else {
		progress = current / target * 100
	}
	if progress > 100 {
		progress = 100
	}
	return int(math.Round(progress))
}

// Age renders the whole-year age for a YYYY-MM-DD date of birth, or "" when
// the date is absent or malformed.
func Age(dateOfBirth string, now time.Time) string {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return ""
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return ""
	}
	return fmt.Sprintf("%d", years)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
