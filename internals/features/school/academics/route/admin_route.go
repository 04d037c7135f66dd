package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/controller"
)

// AcademicsAdminRoutes: kelas & nilai siswa (group /api/a).
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	csCtl := controller.NewClassSectionController(db)
	gradeCtl := controller.NewStudentGradeController(db)

	sections := r.Group("/class-sections")
	sections.Get("/", csCtl.List)
	sections.Post("/", csCtl.Create)
	sections.Get("/:class_section_id", csCtl.GetByID)
	sections.Patch("/:class_section_id", csCtl.Patch)
	sections.Delete("/:class_section_id", csCtl.SoftDelete)

	r.Get("/students/:student_id/grades", gradeCtl.ListByStudent)
	r.Put("/grades", gradeCtl.Upsert)
	r.Delete("/grades/:student_grade_id", gradeCtl.SoftDelete)
}
