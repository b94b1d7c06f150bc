package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	authController "quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/middlewares"
	authMw "quizku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, requireAuth fiber.Handler) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	// Public (dengan rate limiter ketat)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// Private
	auth.Get("/profile", requireAuth, ctrl.Profile)
	auth.Get("/users", requireAuth,
		authMw.OnlyRoles(constants.RoleErrorAdmin("daftar user"), constants.AdminOnly...),
		ctrl.GetAllUsers)
}
