// file: internals/route/details/school_routes.go
package details

import (
	classRoute "nilaiku_backend/internals/features/school/classes/route"
	examRoute "nilaiku_backend/internals/features/school/exams/route"
	markRoute "nilaiku_backend/internals/features/school/marks/route"
	resultRoute "nilaiku_backend/internals/features/school/results/route"
	studentRoute "nilaiku_backend/internals/features/school/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolAdminRoutes mounts every admin CRUD area under the authenticated
// group.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)
	markRoute.MarkAdminRoutes(admin, db)
	resultRoute.PortalAdminRoutes(admin, db)
}

// SchoolPublicRoutes mounts the unauthenticated portal.
func SchoolPublicRoutes(public fiber.Router, db *gorm.DB) {
	resultRoute.PortalPublicRoutes(public, db)
}
