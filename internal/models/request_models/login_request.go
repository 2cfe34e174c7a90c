package request_models

type LoginRequest struct {
	Email string `json:"email"`
	// Password is accepted for client compatibility and ignored by the demo login.
	Password string `json:"password,omitempty"`
}
