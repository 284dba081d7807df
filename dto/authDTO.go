package dto

import "strings"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// NormalizeEmail pins the email case policy: addresses are compared,
// stored and looked up in trimmed lowercase form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
