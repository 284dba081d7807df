package services

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/config"
	apperrors "authapi/pkg/errors"
)

func newTestJwtService(ttl time.Duration) *JwtService {
	return NewJwtService(&config.Config{
		JWTSecretKey:   "test-super-secret-key-that-is-long-enough-for-hmac",
		JWTIssuer:      "TestIssuer",
		JWTAudience:    "TestAudience",
		AccessTokenTTL: ttl,
	})
}

func TestCreateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	userID := uuid.New().String()

	token, err := svc.CreateAccessToken(userID, "test@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.NotEmpty(t, claims.ID, "jti must be set")
}

func TestCreateAccessToken_TwoTokensDiffer(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	userID := uuid.New().String()

	first, err := svc.CreateAccessToken(userID, "a@b.com", "A")
	require.NoError(t, err)
	second, err := svc.CreateAccessToken(userID, "a@b.com", "A")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "jti makes every token unique")
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)

	_, err := svc.ValidateToken("this.is.not.a.valid.jwt.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	token, err := svc.CreateAccessToken(uuid.New().String(), "t@t.com", "T")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuing := NewJwtService(&config.Config{
		JWTSecretKey:   "test-super-secret-key-that-is-long-enough-for-hmac",
		JWTIssuer:      "SomeoneElse",
		JWTAudience:    "TestAudience",
		AccessTokenTTL: time.Hour,
	})
	validating := newTestJwtService(time.Hour)

	token, err := issuing.CreateAccessToken(uuid.New().String(), "t@t.com", "T")
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(-time.Minute)
	token, err := svc.CreateAccessToken(uuid.New().String(), "t@t.com", "T")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUserIDFromToken(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	userID := uuid.New().String()
	token, err := svc.CreateAccessToken(userID, "t@t.com", "T")
	require.NoError(t, err)

	got, err := svc.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.UserIDFromToken("invalid-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUserIDFromToken_SubjectNotAUserID(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	token, err := svc.CreateAccessToken("not-a-uuid", "t@t.com", "T")
	require.NoError(t, err)

	_, err = svc.UserIDFromToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenExpiration(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)
	token, err := svc.CreateAccessToken(uuid.New().String(), "t@t.com", "T")
	require.NoError(t, err)

	exp := svc.TokenExpiration(token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}

func TestTokenExpiration_UnparsableFallsBackToNow(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)

	exp := svc.TokenExpiration("garbage")
	assert.WithinDuration(t, time.Now(), exp, time.Second, "unreadable tokens count as already expired")
}

func TestCreateRefreshToken(t *testing.T) {
	t.Parallel()

	svc := newTestJwtService(time.Hour)

	first, err := svc.CreateRefreshToken()
	require.NoError(t, err)
	second, err := svc.CreateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 64)
}
