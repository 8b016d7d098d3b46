// internals/features/school/classes/route/admin_route.go
package route

import (
	classController "nilaiku_backend/internals/features/school/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: class CRUD + subject add/remove
Mount example: ClassAdminRoutes(app.Group("/api/a"), db)
*/
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classController.ClassesController{DB: db}
	classes := r.Group("/classes")
	classes.Get("/", ctl.ListClasses)      // GET    /api/a/classes
	classes.Post("/", ctl.CreateClass)     // POST   /api/a/classes
	classes.Get("/:id", ctl.GetClass)      // GET    /api/a/classes/:id
	classes.Put("/:id", ctl.UpdateClass)   // PUT    /api/a/classes/:id
	classes.Delete("/:id", ctl.DeleteClass) // DELETE /api/a/classes/:id

	classes.Post("/:id/subjects", ctl.AddSubject)                  // POST   /api/a/classes/:id/subjects
	classes.Delete("/:id/subjects/:subject_id", ctl.RemoveSubject) // DELETE /api/a/classes/:id/subjects/:subject_id
}
