package service

import (
	"errors"
	"fmt"
	"time"

	"inventory-portal/internal/database"
	"inventory-portal/internal/hash"
	"inventory-portal/internal/models"

	"gorm.io/gorm"
)

// UserService owns authentication and registration.
//
// Authentication has no lockout, rate limiting or timing protection.
// That is a documented limitation of this training target, not an
// oversight to patch silently.
type UserService struct {
	Hasher hash.Hasher
}

func NewUserService(hasher hash.Hasher) *UserService {
	return &UserService{Hasher: hasher}
}

// Authenticate checks the username/password pair against the store and
// returns the session principal. Unknown user and bad password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.Principal, error) {
	user, err := database.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthFailure
		}
		return nil, err
	}

	if !s.Hasher.Verify(user.PasswordHash, password) {
		return nil, ErrAuthFailure
	}

	return &models.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Register creates a new employee account. The email is synthesized from
// the username plus a timestamp; it is not user-supplied.
func (s *UserService) Register(username, password, confirm string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, validation("Username and password are required")
	}
	if password != confirm {
		return nil, validation("Passwords do not match")
	}
	if len(password) < 6 {
		return nil, validation("Password must be at least 6 characters long")
	}

	if _, err := database.FindUserByUsername(username); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	h, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s_%d@techcorp.local", username, time.Now().Unix()),
		PasswordHash: h,
		Role:         models.RoleEmployee,
	}
	if err := database.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}
