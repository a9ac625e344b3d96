package domain

// Alert is a wellbeing or academic notification raised by the service.
// Alerts are mutated in place when resolved and never deleted locally.
type Alert struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Priority     string    `json:"priority,omitempty"`
	SourceMetric string    `json:"sourceMetric,omitempty"`
	CreatedAt    Timestamp `json:"createdAt"`
	Resolved     bool      `json:"isResolved"`
}
