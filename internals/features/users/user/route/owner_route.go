package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/user/controller"
)

// UserOwnerRoutes: manajemen user & keanggotaan sekolah (group /api/o).
func UserOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserOwnerController(db)

	users := r.Group("/users")
	users.Get("/", ctl.List)
	users.Patch("/:user_id/active", ctl.SetActive)

	admins := r.Group("/school-admins")
	admins.Post("/", ctl.AssignSchoolAdmin)
	admins.Delete("/:school_admin_id", ctl.RevokeSchoolAdmin)
}
