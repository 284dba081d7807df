package repository

import (
	"context"

	"authapi/model"
)

// UserRepository is the persistence contract the services depend on.
// Implementations must enforce email uniqueness at the storage layer;
// the duplicate-check in the auth flow is only a fast path.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.User, error)
}
