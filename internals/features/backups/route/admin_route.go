package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/backups/controller"
)

// BackupAdminRoutes: riwayat backup per tenant (group /api/a).
func BackupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBackupRunController(db)

	backups := r.Group("/backups")
	backups.Post("/", ctl.Record)
	backups.Get("/latest", ctl.Latest)
	backups.Get("/summary", ctl.Summary)
}
