package models

// ErrorResponse is the uniform JSON error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after a successful registration submission.
// The account is still unverified at this point; no token is issued yet.
type RegisterResponse struct {
	Message    string `json:"message"`
	TempUserID int64  `json:"tempUserId"`
	Email      string `json:"email"`
}

// AuthResponse is returned after successful OTP verification or login.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// LoginRequiresVerification is returned when a login hits an unverified
// account, so the client can redirect to the OTP screen.
type LoginRequiresVerification struct {
	Error                string `json:"error"`
	RequiresVerification bool   `json:"requiresVerification"`
	Email                string `json:"email"`
}

// FeedbackSummary aggregates a resource's feedback entries.
type FeedbackSummary struct {
	Feedback      []Feedback `json:"feedback"`
	AverageRating float64    `json:"averageRating"`
	TotalFeedback int        `json:"totalFeedback"`
}
