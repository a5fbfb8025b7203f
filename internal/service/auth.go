package service

import (
	"crypto/subtle"

	"flashcards/internal/repository"
)

// AuthService guards the bot behind a shared password
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if user is authorized, registering unknown users
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	user, err := s.userRepo.EnsureUser(userID)
	if err != nil {
		return false, err
	}
	return user.Authorized, nil
}

// Login authorizes the user when the password matches
func (s *AuthService) Login(userID int64, password string) (bool, error) {
	if !s.CheckPassword(password) {
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, err
	}
	return true, nil
}
