package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes: CRUD siswa + penerbitan kode registrasi (group /api/a).
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Get("/next-code", ctl.NextCode)
	students.Get("/:student_id", ctl.GetByID)
	students.Patch("/:student_id", ctl.Patch)
	students.Patch("/:student_id/status", ctl.SetStatus)
	students.Post("/:student_id/approve", ctl.ApprovePreEnrollment)
	students.Delete("/:student_id", ctl.SoftDelete)
}
