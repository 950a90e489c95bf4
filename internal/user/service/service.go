package service

import (
	"context"
	"errors"
	"fmt"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	"github.com/idyllic-labs/idyllic-api/internal/user/domain"
	"github.com/idyllic-labs/idyllic-api/internal/user/repository"
)

type UserService struct {
	repo      repository.Repository
	validator *InputValidator
	log       *logger.Logger
}

func NewUserService(repo repository.Repository, log *logger.Logger) *UserService {
	return &UserService{
		repo:      repo,
		validator: NewInputValidator(),
		log:       log,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, commonerrors.NewUserNotFound(id)
		}
		return domain.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// CreateUser validates input before the store sees it. The returned User is
// the record the store produced, never a separately tracked counter value.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if err := s.validator.ValidateCreateUser(input); err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.Create(ctx, input.Name, input.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": user.ID,
		"action":  "create_user",
	}).Infof("user created")

	return user, nil
}
