package database

import "inventory-portal/internal/models"

// Query helpers backing the credential store. Callers get
// gorm.ErrRecordNotFound untranslated and decide what to surface.

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(user *models.User) error {
	return DB.Create(user).Error
}

func UpdatePassword(username, newHash string) error {
	return DB.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", newHash).Error
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	err := DB.Order("created_at desc").Find(&users).Error
	return users, err
}
