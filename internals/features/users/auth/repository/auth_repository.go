// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "quizku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsernameLight hanya mengambil kolom yang dibutuhkan login hot path
func FindUserByUsernameLight(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password", "role").
		Where("user_name = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func ListAllUsers(db *gorm.DB) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
