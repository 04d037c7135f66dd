package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/bills/controller"
)

// BillPublicRoutes: webhook gateway pembayaran (group /api/public).
func BillPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMidtransWebhookController(db)

	r.Post("/payments/midtrans/webhook", ctl.Handle)
}
