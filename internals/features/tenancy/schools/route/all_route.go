package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/controller"
)

// SchoolPublicRoutes: endpoint tanpa auth (group /api/public).
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	schoolCtl := controller.NewSchoolPublicController(db)
	planCtl := controller.NewSchoolServicePlanController(db)

	r.Get("/schools/:school_slug", schoolCtl.GetBySlug)
	r.Get("/service-plans", planCtl.List)
}
