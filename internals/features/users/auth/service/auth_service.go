package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "quizku_backend/internals/features/users/auth/helper"
	authRepo "quizku_backend/internals/features/users/auth/repository"
	userDTO "quizku_backend/internals/features/users/user/dto"
	userModel "quizku_backend/internals/features/users/user/model"
	helpers "quizku_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Role dari body diabaikan: register publik selalu jadi 'user'
	input.Role = "user"

	if err := input.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Hash password
	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	// Create user
	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Username already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", userDTO.ToUserDTO(input))
}

/* ==========================
   LOGIN (username + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Username string `json:"user_name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Username = strings.TrimSpace(input.Username)

	if err := authHelper.ValidateLoginInput(input.Username, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user (hot path)
	userLight, err := authRepo.FindUserByUsernameLight(db, input.Username)
	if err != nil {
		// pesan sama untuk user tak dikenal & password salah
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Username atau Password salah")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Username atau Password salah")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	// Issue access token
	token, err := CreateAccessToken(*userFull)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  userDTO.ToUserDTO(*userFull),
	})
}
