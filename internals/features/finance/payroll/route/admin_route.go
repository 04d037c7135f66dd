package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payroll/controller"
)

// PayrollAdminRoutes: master pegawai + slip gaji (group /api/a).
func PayrollAdminRoutes(r fiber.Router, db *gorm.DB) {
	empCtl := controller.NewEmployeeController(db)
	slipCtl := controller.NewPayslipController(db)

	employees := r.Group("/employees")
	employees.Get("/", empCtl.List)
	employees.Post("/", empCtl.Create)
	employees.Get("/:employee_id", empCtl.GetByID)
	employees.Patch("/:employee_id", empCtl.Patch)
	employees.Delete("/:employee_id", empCtl.SoftDelete)

	payslips := r.Group("/payslips")
	payslips.Get("/", slipCtl.List)
	payslips.Post("/", slipCtl.Create)
	payslips.Post("/:payslip_id/mark-paid", slipCtl.MarkPaid)
	payslips.Delete("/:payslip_id", slipCtl.SoftDelete)
}
