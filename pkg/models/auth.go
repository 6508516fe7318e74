package models

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse returns the issued token and basic profile data.
type LoginResponse struct {
	Token              string `json:"token"`
	UserID             int    `json:"user_id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	HasExclusiveAccess bool   `json:"has_exclusive_access"`
}
