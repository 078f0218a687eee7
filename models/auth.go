package models

// Account roles carried as the JWT "role" claim.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// LoginRequest defines the payload for doctor and patient sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by the login endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}
