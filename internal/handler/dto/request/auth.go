package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest is optional when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
