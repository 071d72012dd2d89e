package repository

import (
	"context"

	"userapi/internal/model"
)

type UserRepository interface {
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, int, error)
	GetUser(ctx context.Context, id uint32) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, id uint32, user model.User) (model.User, error)
	DeleteUser(ctx context.Context, id uint32) (model.User, error)
}
