package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/repository"
	"github.com/projectdeck/project-management-api/internal/security"
	"github.com/projectdeck/project-management-api/internal/token"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email is already taken")
	ErrUserNotFound         = errors.New("user does not exist")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrRefreshWhenLoggedOut = errors.New("cannot refresh when logged out")
	ErrRefreshTokenMismatch = errors.New("access denied")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService owns registration, login, logout and token refresh,
// including the refresh-token-hash rotation protocol.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   *security.Hasher
	tokens   *token.Service
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher *security.Hasher, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// Register creates a new user and immediately logs them in: the returned
// pair's refresh-token hash is persisted on the fresh record.
func (s *AuthService) Register(input RegisterInput) (*token.Pair, error) {
	email := strings.TrimSpace(input.Email)

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueAndStorePair(user)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a fresh token pair. The stored
// refresh-token hash is overwritten, so any previously issued refresh
// token stops working immediately.
func (s *AuthService) Login(input LoginInput) (*token.Pair, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		return nil, ErrInvalidPassword
	}

	return s.issueAndStorePair(user)
}

// Logout nulls the stored refresh-token hash. Idempotent.
func (s *AuthService) Logout(userID models.EntityID) error {
	if err := s.userRepo.UpdateRefreshTokenHash(userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a valid refresh token for a new pair and rotates the
// stored hash, so every refresh token is good for exactly one use.
func (s *AuthService) Refresh(userID models.EntityID, presentedToken string) (*token.Pair, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.RefreshTokenHash == nil {
		return nil, ErrRefreshWhenLoggedOut
	}

	if !s.hasher.VerifyToken(*user.RefreshTokenHash, presentedToken) {
		return nil, ErrRefreshTokenMismatch
	}

	return s.issueAndStorePair(user)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id models.EntityID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueAndStorePair(user *models.User) (*token.Pair, error) {
	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	refreshHash, err := s.hasher.HashToken(pair.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshTokenHash(user.ID, &refreshHash); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}
