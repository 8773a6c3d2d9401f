package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/mappers"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

// userService implements the UserService interface
type userService struct {
	repos     repositories.RepositoryManager
	mapper    mappers.UserMapper
	validator *Validator
	cost      int
}

// NewUserService creates a user service hashing passwords with the given bcrypt cost.
// A cost of zero uses bcrypt.DefaultCost.
func NewUserService(repos repositories.RepositoryManager, cost int) UserService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &userService{
		repos:     repos,
		validator: NewValidator(),
		cost:      cost,
	}
}

// Register creates an account. The first account becomes an administrator.
func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserDto, error) {
	if req == nil {
		return nil, invalidField("user", "is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user := models.NewUser(models.SanitizeString(req.Username), models.SanitizeString(req.Email))
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	err = s.repos.WithTransaction(ctx, func(ctx context.Context) error {
		count, err := s.repos.Users().Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		}
		if err := user.Validate(); err != nil {
			return fromModelError(err)
		}
		return s.repos.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	out := s.mapper.ToDto(*user)
	return &out, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserDto, error) {
	userID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	out := s.mapper.ToDto(*user)
	return &out, nil
}

// ListUsers returns all users ordered by username
func (s *userService) ListUsers(ctx context.Context) ([]dto.UserDto, error) {
	users, err := s.repos.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return s.mapper.ToDtos(users), nil
}

// DeleteUser deletes a user by ID
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.repos.Users().Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Authenticate checks a username and password pair
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repos.Users().GetByUsername(ctx, models.SanitizeString(username))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return user, nil
}
