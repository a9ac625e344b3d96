package domain

// Canonical goal keys. When the service returns no goals at all, the
// aggregation engine synthesizes exactly these four.
const (
	GoalSleep  = "sleep"
	GoalSteps  = "steps"
	GoalStudy  = "study"
	GoalStress = "stress"
)

// Goal is a target/current pair with a 0-100 progress percentage. Progress
// may come from the service or be computed locally for synthesized goals.
type Goal struct {
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Progress int     `json:"progress"`
}
