package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/home/dashboard/controller"
)

// DashboardAdminRoutes (group /api/a).
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	r.Get("/dashboard", ctl.Get)
}
