package database

import (
	"errors"

	"inventory-portal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTokenNotFound = errors.New("reset token not found")
	ErrTokenUsed     = errors.New("reset token already used")
	ErrTokenMismatch = errors.New("reset token issued for another user")
)

// CreateResetToken persists a fresh token for username and returns it.
// Multiple live tokens per user are allowed.
func CreateResetToken(username string) (string, error) {
	token := uuid.NewString()
	row := models.ResetToken{
		Username: username,
		Token:    token,
	}
	if err := DB.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

func FindResetToken(token string) (*models.ResetToken, error) {
	var row models.ResetToken
	if err := DB.Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ConsumeResetToken performs the corrected apply step in one transaction:
// the token must exist, be unused, and be bound to targetUsername. The
// bound user's password is updated, the token is marked used, and every
// other outstanding token for that user is invalidated with it.
func ConsumeResetToken(token, targetUsername, newHash string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var row models.ResetToken
		if err := tx.Where("token = ?", token).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		if row.Used {
			return ErrTokenUsed
		}
		if targetUsername != row.Username {
			return ErrTokenMismatch
		}

		if err := tx.Model(&models.User{}).
			Where("username = ?", row.Username).
			Update("password_hash", newHash).Error; err != nil {
			return err
		}
		return tx.Model(&models.ResetToken{}).
			Where("username = ?", row.Username).
			Update("used", true).Error
	})
}
