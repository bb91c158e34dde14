package service

import (
	"errors"

	"inventory-portal/internal/database"
	"inventory-portal/internal/hash"

	"gorm.io/gorm"
)

// ResetService implements the password-reset state machine:
// Requested -> TokenIssued -> Applied.
//
// With Hardened unset it reproduces the reference behavior exactly:
// Apply never looks the token up, never checks which user it was issued
// for, and never marks it used. A token issued for one account can
// therefore reset any account, any number of times. With Hardened set,
// Apply runs the full check-and-consume inside a single transaction.
type ResetService struct {
	Hasher   hash.Hasher
	Hardened bool
}

func NewResetService(hasher hash.Hasher, hardened bool) *ResetService {
	return &ResetService{Hasher: hasher, Hardened: hardened}
}

// Request issues a reset token for username, provided the caller proves
// knowledge of the current password. On any failure no token is created.
func (s *ResetService) Request(username, currentPassword string) (string, error) {
	user, err := database.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAuthFailure
		}
		return "", err
	}
	if !s.Hasher.Verify(user.PasswordHash, currentPassword) {
		return "", ErrAuthFailure
	}

	return database.CreateResetToken(username)
}

// TokenUsername returns the username a live token was issued for, used
// only to prefill the reset form. Empty string when the token is unknown
// or spent.
func (s *ResetService) TokenUsername(token string) string {
	row, err := database.FindResetToken(token)
	if err != nil || row.Used {
		return ""
	}
	return row.Username
}

// Apply sets a new password for targetUsername.
func (s *ResetService) Apply(token, targetUsername, newPassword, confirm string) error {
	if newPassword != confirm {
		return validation("Passwords do not match")
	}

	newHash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if !s.Hardened {
		// Reference behavior: the token is never validated. Whatever
		// username arrived with the form gets the new password.
		return database.UpdatePassword(targetUsername, newHash)
	}

	switch err := database.ConsumeResetToken(token, targetUsername, newHash); {
	case errors.Is(err, database.ErrTokenNotFound),
		errors.Is(err, database.ErrTokenUsed),
		errors.Is(err, database.ErrTokenMismatch):
		return validation("Invalid or expired reset token")
	default:
		return err
	}
}
