package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/documents/controller"
)

// DocumentAdminRoutes: dokumen sekolah + alur tanda tangan (group /api/a).
func DocumentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDocumentController(db)

	docs := r.Group("/documents")
	docs.Get("/", ctl.List)
	docs.Post("/", ctl.Create)
	docs.Get("/:document_id", ctl.GetByID)
	docs.Patch("/:document_id", ctl.Patch)
	docs.Patch("/:document_id/signature", ctl.SetSignatureStatus)
	docs.Delete("/:document_id", ctl.SoftDelete)
}
