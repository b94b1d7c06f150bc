package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling awal supaya panic handler membungkus semuanya)
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registering global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
