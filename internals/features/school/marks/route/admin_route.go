// internals/features/school/marks/route/admin_route.go
package route

import (
	markController "nilaiku_backend/internals/features/school/marks/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: mark sheet per exam + cell upsert
Mount example: MarkAdminRoutes(app.Group("/api/a"), db)
*/
func MarkAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &markController.MarksController{DB: db}
	marks := r.Group("/marks")
	marks.Get("/exam/:exam_id", ctl.ListMarksForExam) // GET  /api/a/marks/exam/:exam_id
	marks.Post("/", ctl.UpsertMark)                   // POST /api/a/marks
}
