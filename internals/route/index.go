// file: internals/route/index.go
package routes

import (
	"log"

	authRoute "nilaiku_backend/internals/features/users/auth/route"
	authMw "nilaiku_backend/internals/middlewares/auth"
	routeDetails "nilaiku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.SchoolPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth)...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))
	routeDetails.SchoolAdminRoutes(admin, db)
}
