package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"authapi/dto"
	"authapi/model"
	apperrors "authapi/pkg/errors"
	"authapi/repository"
)

// UserService implements the CRUD surface over the user store. Responses
// never include the password hash.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(&u))
	}
	return responses, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) CreateUser(ctx context.Context, req dto.UserRequest) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}

	user := &model.User{
		UserID:   uuid.New().String(),
		Name:     req.Name,
		Email:    dto.NormalizeEmail(req.Email),
		Password: string(hashedPassword),
	}
	return s.users.Create(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UserRequest) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "failed to hash password", err)
	}

	user.Name = req.Name
	user.Email = dto.NormalizeEmail(req.Email)
	user.Password = string(hashedPassword)
	return s.users.Update(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
