package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "quizku_backend/internals/features/users/auth/repository"
	"quizku_backend/internals/features/users/auth/service"
	userDTO "quizku_backend/internals/features/users/user/dto"
	helpers "quizku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// Profile meng-echo identitas hasil resolve token (GET /api/auth/profile)
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(ac.DB, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "ok", userDTO.ToUserDTO(*user))
}

// GetAllUsers mengembalikan seluruh user (admin only, tanpa password hash)
func (ac *AuthController) GetAllUsers(c *fiber.Ctx) error {
	users, err := authRepo.ListAllUsers(ac.DB)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helpers.JsonList(c, "ok", userDTO.ToUserDTOs(users))
}
