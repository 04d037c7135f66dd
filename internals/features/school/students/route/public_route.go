package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/controller"
)

// StudentPublicRoutes: pendaftaran calon siswa tanpa login (group /api/public).
func StudentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPreEnrollmentController(db)

	r.Post("/:school_slug/pre-enroll", ctl.PreEnroll)
}
