package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/controller"
)

// SchoolOwnerRoutes: manajemen tenant & plan oleh owner (group /api/o).
func SchoolOwnerRoutes(r fiber.Router, db *gorm.DB) {
	schoolCtl := controller.NewSchoolOwnerController(db)
	planCtl := controller.NewSchoolServicePlanController(db)

	schools := r.Group("/schools")
	schools.Get("/", schoolCtl.List)
	schools.Post("/", schoolCtl.Create)
	schools.Get("/:id", schoolCtl.GetByID)
	schools.Patch("/:id", schoolCtl.Patch)
	schools.Delete("/:id", schoolCtl.SoftDelete)
	schools.Patch("/:id/status", schoolCtl.SetStatus)
	schools.Post("/:id/extend-trial", schoolCtl.ExtendTrial)
	schools.Post("/:id/logo", schoolCtl.UploadLogo)

	plans := r.Group("/service-plans")
	plans.Post("/", planCtl.Create)
	plans.Get("/", planCtl.List)
	plans.Get("/:id", planCtl.GetByID)
	plans.Patch("/:id", planCtl.Patch)
	plans.Delete("/:id", planCtl.SoftDelete)
}
