package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the claim set embedded in every access token.
// Subject carries the user ID, ID the unique token id (jti).
type AccessClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
