package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	questionController "quizku_backend/internals/features/quizzes/question/controller"
	authMw "quizku_backend/internals/middlewares/auth"
)

func QuizRoutes(api fiber.Router, db *gorm.DB, requireAuth fiber.Handler) {
	ctrl := questionController.NewQuestionController(db)

	adminOnly := authMw.OnlyRoles(constants.RoleErrorAdmin("bank soal"), constants.AdminOnly...)

	q := api.Group("/quizzes", requireAuth)

	// ⚠️ route statis HARUS sebelum /:id
	q.Get("/", ctrl.GetAllQuestions)
	q.Get("/filter", ctrl.FilterQuestions)
	q.Get("/categories", ctrl.GetCategories)
	q.Get("/difficulties", ctrl.GetDifficulties)
	q.Get("/:id", ctrl.GetQuestionByID)

	// === ADMIN ROUTES ===
	q.Post("/", adminOnly, ctrl.CreateQuestions)   // ➕ single atau batch
	q.Put("/:id", adminOnly, ctrl.UpdateQuestion)  // ✏️ partial update
	q.Delete("/:id", adminOnly, ctrl.DeleteQuestion)
}
