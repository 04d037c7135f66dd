package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/controller"
)

// SchoolAdminRoutes: profil & trial-status sekolah sendiri (group /api/a).
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolAdminController(db)

	school := r.Group("/school")
	school.Get("/", ctl.GetMine)
	school.Patch("/", ctl.PatchMine)
	school.Get("/trial-status", ctl.TrialStatus)
}
