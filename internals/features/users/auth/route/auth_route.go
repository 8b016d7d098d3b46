package route

import (
	authController "nilaiku_backend/internals/features/users/auth/controller"
	"nilaiku_backend/internals/middlewares"
	authMw "nilaiku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts login (public, rate-limited) and logout (admin).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	app.Post("/api/admin/login", middlewares.LoginRateLimiter(), ctl.Login)
	app.Post("/api/a/logout", authMw.AuthMiddleware(db), ctl.Logout)
}
