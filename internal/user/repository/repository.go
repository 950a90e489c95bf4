package repository

import (
	"context"
	"errors"

	"github.com/idyllic-labs/idyllic-api/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (domain.User, error)
	Create(ctx context.Context, name, email string) (domain.User, error)
}
