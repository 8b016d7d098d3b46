// internals/features/school/results/route/portal_route.go
package route

import (
	resultController "nilaiku_backend/internals/features/school/results/controller"
	"nilaiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PortalPublicRoutes: unauthenticated surface. Only published results are
// reachable from here; the gate lives in the result service, not in the
// router.
func PortalPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewPortalController(db)
	portal := r.Group("/portal")
	portal.Post("/result", middlewares.PortalLookupRateLimiter(), ctl.FindResult) // POST /api/portal/result
	portal.Get("/college-name", ctl.GetCollegeName)                               // GET  /api/portal/college-name
}

// PortalAdminRoutes: settings write + dashboard counters.
func PortalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewPortalController(db)
	portal := r.Group("/portal")
	portal.Post("/college-name", ctl.SetCollegeName) // POST /api/a/portal/college-name
	portal.Get("/stats", ctl.GetDashboardStats)      // GET  /api/a/portal/stats
}
