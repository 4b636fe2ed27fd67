package service

import (
	"fmt"
	"strings"

	"spellingbee/internal/repository"
)

// AuthService handles user registration
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// EnsureUser creates the user record if it doesn't exist
func (s *AuthService) EnsureUser(userID int64) error {
	return s.userRepo.EnsureUser(userID)
}

// IsRegistered reports whether the user exists and has a name
func (s *AuthService) IsRegistered(userID int64) (bool, error) {
	exists, err := s.userRepo.UserExists(userID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	return s.userRepo.HasName(userID)
}

// Register stores the user's name, creating the record if needed
func (s *AuthService) Register(userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if err := s.userRepo.EnsureUser(userID); err != nil {
		return err
	}
	return s.userRepo.SetName(userID, name)
}
