package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/bills/controller"
)

// BillAdminRoutes: tagihan siswa + pembayaran midtrans (group /api/a).
func BillAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentBillController(db)

	bills := r.Group("/bills")
	bills.Get("/", ctl.List)
	bills.Post("/", ctl.Create)
	bills.Get("/:student_bill_id", ctl.GetByID)
	bills.Post("/:student_bill_id/pay", ctl.Pay)
	bills.Delete("/:student_bill_id", ctl.SoftDelete)
}
