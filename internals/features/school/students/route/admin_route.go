// internals/features/school/students/route/admin_route.go
package route

import (
	studentController "nilaiku_backend/internals/features/school/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD
Mount example: StudentAdminRoutes(app.Group("/api/a"), db)
*/
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentsController{DB: db}
	students := r.Group("/students")
	students.Get("/", ctl.ListStudents)      // GET    /api/a/students
	students.Post("/", ctl.CreateStudent)    // POST   /api/a/students
	students.Get("/:id", ctl.GetStudent)     // GET    /api/a/students/:id
	students.Put("/:id", ctl.UpdateStudent)  // PUT    /api/a/students/:id
	students.Delete("/:id", ctl.DeleteStudent) // DELETE /api/a/students/:id
}
