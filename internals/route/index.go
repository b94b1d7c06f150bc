// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "quizku_backend/internals/middlewares/auth"
	routeDetails "quizku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// JWT guard dibangun sekali, dipakai ulang oleh semua route privat
	requireAuth := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db, requireAuth)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up QuizRoutes...")
	routeDetails.QuizRoutes(api, db, requireAuth)

	log.Println("[INFO] Setting up ResultRoutes...")
	routeDetails.ResultRoutes(api, db, requireAuth)
}
