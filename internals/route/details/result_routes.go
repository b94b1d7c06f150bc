package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	resultController "quizku_backend/internals/features/results/result/controller"
	authMw "quizku_backend/internals/middlewares/auth"
)

func ResultRoutes(api fiber.Router, db *gorm.DB, requireAuth fiber.Handler) {
	ctrl := resultController.NewResultController(db)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("semua hasil quiz"), constants.AdminOnly...)

	r := api.Group("/results", requireAuth)

	r.Post("/", ctrl.SubmitResult)
	r.Get("/my-results", ctrl.GetMyResults)
	r.Get("/all", adminOnly, ctrl.GetAllResults)
	r.Get("/:id", ctrl.GetResultByID) // ownership dicek di controller
}
