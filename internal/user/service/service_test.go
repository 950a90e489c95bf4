package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	"github.com/idyllic-labs/idyllic-api/internal/user/domain"
	"github.com/idyllic-labs/idyllic-api/internal/user/repository"
)

type mockRepo struct {
	listFunc     func(ctx context.Context) ([]domain.User, error)
	findByIDFunc func(ctx context.Context, id int) (domain.User, error)
	createFunc   func(ctx context.Context, name, email string) (domain.User, error)
}

func (m *mockRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.listFunc(ctx)
}

func (m *mockRepo) FindByID(ctx context.Context, id int) (domain.User, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepo) Create(ctx context.Context, name, email string) (domain.User, error) {
	return m.createFunc(ctx, name, email)
}

func setupService(t *testing.T, repo repository.Repository) *UserService {
	t.Helper()
	log, _ := logger.New("", "test", "info")
	return NewUserService(repo, log)
}

func TestCreateUser_MissingEmail(t *testing.T) {
	repo := &mockRepo{
		createFunc: func(ctx context.Context, name, email string) (domain.User, error) {
			t.Fatal("store must not be reached on validation failure")
			return domain.User{}, nil
		},
	}
	svc := setupService(t, repo)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "John"})

	vErr, ok := commonerrors.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := vErr.Fields()
	if len(fields) != 1 || fields[0].Field != "email" {
		t.Errorf("expected failing field email, got %+v", fields)
	}
}

func TestCreateUser_AllFieldsMissing(t *testing.T) {
	repo := &mockRepo{
		createFunc: func(ctx context.Context, name, email string) (domain.User, error) {
			t.Fatal("store must not be reached on validation failure")
			return domain.User{}, nil
		},
	}
	svc := setupService(t, repo)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{})

	vErr, ok := commonerrors.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(vErr.Fields()) != 2 {
		t.Errorf("expected both fields reported, got %+v", vErr.Fields())
	}
}

func TestCreateUser_ReturnsStoreUser(t *testing.T) {
	stored := domain.User{ID: 7, Name: "John", Email: "john@example.com"}
	repo := &mockRepo{
		createFunc: func(ctx context.Context, name, email string) (domain.User, error) {
			return stored, nil
		},
	}
	svc := setupService(t, repo)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "John", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != stored {
		t.Errorf("expected store record %+v, got %+v", stored, user)
	}
}

func TestGetUser_NotFoundDetailNamesID(t *testing.T) {
	repo := &mockRepo{
		findByIDFunc: func(ctx context.Context, id int) (domain.User, error) {
			return domain.User{}, repository.ErrUserNotFound
		},
	}
	svc := setupService(t, repo)

	_, err := svc.GetUser(context.Background(), 999)

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok {
		t.Fatalf("expected domain error, got %v", err)
	}
	if domainErr.HTTPStatus() != 404 {
		t.Errorf("expected 404, got %d", domainErr.HTTPStatus())
	}
	if domainErr.Message() != "User with ID 999 not found" {
		t.Errorf("unexpected detail: %q", domainErr.Message())
	}
}

func TestGetUser_RepoErrorWrapped(t *testing.T) {
	repoErr := errors.New("boom")
	repo := &mockRepo{
		findByIDFunc: func(ctx context.Context, id int) (domain.User, error) {
			return domain.User{}, repoErr
		},
	}
	svc := setupService(t, repo)

	_, err := svc.GetUser(context.Background(), 1)
	if !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to get user") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestListUsers_PassesThrough(t *testing.T) {
	expected := []domain.User{{ID: 1, Name: "a", Email: "a@example.com"}}
	repo := &mockRepo{
		listFunc: func(ctx context.Context) ([]domain.User, error) {
			return expected, nil
		},
	}
	svc := setupService(t, repo)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0] != expected[0] {
		t.Errorf("unexpected users: %+v", users)
	}
}
