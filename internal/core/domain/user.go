package domain

// UserProfile is the identity and biometric snapshot carried in the session.
// It is immutable between explicit profile refreshes.
type UserProfile struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
}

// FullName joins the name parts, tolerating either being empty.
func (u *UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
