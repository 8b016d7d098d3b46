// internals/features/school/exams/route/admin_route.go
package route

import (
	examController "nilaiku_backend/internals/features/school/exams/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD incl. publish toggle (via PUT)
Mount example: ExamAdminRoutes(app.Group("/api/a"), db)
*/
func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &examController.ExamsController{DB: db}
	exams := r.Group("/exams")
	exams.Get("/", ctl.ListExams)       // GET    /api/a/exams
	exams.Post("/", ctl.CreateExam)     // POST   /api/a/exams
	exams.Get("/:id", ctl.GetExam)      // GET    /api/a/exams/:id
	exams.Put("/:id", ctl.UpdateExam)   // PUT    /api/a/exams/:id
	exams.Delete("/:id", ctl.DeleteExam) // DELETE /api/a/exams/:id
}
