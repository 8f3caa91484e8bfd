package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/mapper"
	"github.com/tasklight/todo-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService owns user records: registration, credential verification,
// token issuance and profile reads/updates.
type AuthService struct {
	userRepo *repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	userRepo *repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account. The password is stored only as a
// bcrypt digest and is never echoed back.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.UserDTO, error) {
	exists, err := s.userRepo.EmailExists(ctx, email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the backstop for concurrent registrations that
		// pass the existence check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("userID", user.ID.String()),
	)

	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

// Login verifies credentials and issues a session token bound to the user.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in",
		zap.String("userID", user.ID.String()),
	)

	return token, nil
}

// GetProfile returns the profile for userID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

// UpdateProfile updates name and email, and re-hashes and replaces the stored
// password when a new one is supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email, password string) error {
	taken, err := s.userRepo.EmailExists(ctx, email, &userID)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	updates := map[string]interface{}{
		"name":  name,
		"email": email,
	}
	if password != "" {
		passwordHash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password_hash"] = passwordHash
	}

	rows, err := s.userRepo.Update(ctx, userID, updates)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	s.logger.Info("profile updated",
		zap.String("userID", userID.String()),
		zap.Bool("password_changed", password != ""),
	)

	return nil
}
