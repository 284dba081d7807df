package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"authapi/dto"
	"authapi/logging"
	"authapi/model"
	apperrors "authapi/pkg/errors"
	"authapi/repository"
)

// AuthService composes the user store, token codec and blacklist into the
// register/login/logout flows.
type AuthService struct {
	users     repository.UserRepository
	jwt       *JwtService
	blacklist *TokenBlacklistService
	logger    logging.Logger
}

func NewAuthService(users repository.UserRepository, jwt *JwtService, blacklist *TokenBlacklistService, logger logging.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	email = dto.NormalizeEmail(email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}

	user := &model.User{
		UserID:   uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	// Create may still return ErrEmailTaken: the unique index wins the race
	// two concurrent registrations can have with the check above.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Logout revokes the token for exactly its remaining validity. Malformed and
// already-expired tokens are a no-op, which also makes the call idempotent:
// re-blacklisting overwrites the same sentinel.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ttl := time.Until(s.jwt.TokenExpiration(token))
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Blacklist(ctx, token, ttl); err != nil {
		s.logger.Error(ctx, "failed to blacklist token", "error", err)
		return apperrors.Wrap(apperrors.CodeInternal, "failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *model.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(user.UserID, user.Email, user.Name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create access token", err)
	}

	refreshToken, err := s.jwt.CreateRefreshToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "failed to create refresh token", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
		},
	}, nil
}
