package services

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authapi/config"
	"authapi/model"
	apperrors "authapi/pkg/errors"
)

// JwtService issues and validates access tokens and generates opaque
// refresh tokens. Validation failures never escape as parser errors;
// callers only ever see ErrInvalidToken.
type JwtService struct {
	secretKey []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

func NewJwtService(cfg *config.Config) *JwtService {
	return &JwtService{
		secretKey: []byte(cfg.JWTSecretKey),
		issuer:    cfg.JWTIssuer,
		audience:  cfg.JWTAudience,
		accessTTL: cfg.AccessTokenTTL,
	}
}

func (s *JwtService) CreateAccessToken(userID, email, name string) (string, error) {
	now := time.Now()
	claims := &model.AccessClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// CreateRefreshToken returns 64 bytes of entropy, base64-encoded. The token
// carries no claims and is not persisted or exchangeable yet; see DESIGN.md.
func (s *JwtService) CreateRefreshToken() (string, error) {
	b := make([]byte, 64)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// ValidateToken verifies signature, issuer, audience and expiry with zero
// clock-skew tolerance.
func (s *JwtService) ValidateToken(tokenString string) (*model.AccessClaims, error) {
	claims := &model.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// UserIDFromToken validates the token and parses its subject as a user ID.
func (s *JwtService) UserIDFromToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Subject, nil
}

// TokenExpiration reads the expiry claim without verifying the signature.
// It is used only to compute the remaining TTL during logout; a token that
// cannot be parsed counts as already expired.
func (s *JwtService) TokenExpiration(tokenString string) time.Time {
	claims := &model.AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil || claims.ExpiresAt == nil {
		return time.Now()
	}
	return claims.ExpiresAt.Time
}
