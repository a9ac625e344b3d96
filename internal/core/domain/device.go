package domain

// Device is a wearable or sensor paired with the user's account.
type Device struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Model     string     `json:"model,omitempty"`
	Status    string     `json:"status"`
	Connected bool       `json:"isConnected"`
	Battery   *int       `json:"battery"`
	LastSync  *Timestamp `json:"lastSync"`
}
