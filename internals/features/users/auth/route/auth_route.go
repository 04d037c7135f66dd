package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login/refresh/reset (tanpa auth, group /api/auth).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/login-google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	r.Post("/refresh-token", ctl.Refresh)
	r.Get("/security-question", ctl.GetSecurityQuestion)
	r.Post("/reset-password", ctl.ResetPassword)
}

// AuthProtectedRoutes: butuh AuthJWT tapi TIDAK lewat gate sekolah aktif
// (logout harus selalu bisa walau sekolah suspended).
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Post("/logout", ctl.Logout)
	r.Get("/me", ctl.Me)
}
