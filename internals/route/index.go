// file: internals/route/index.go
package route

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	helperAuth "schoolku_backend/internals/helpers/auth"
	authMw "schoolku_backend/internals/middlewares/auth_school"
	featureMw "schoolku_backend/internals/middlewares/features"

	backupRoute "schoolku_backend/internals/features/backups/route"
	documentRoute "schoolku_backend/internals/features/documents/route"
	billRoute "schoolku_backend/internals/features/finance/bills/route"
	payrollRoute "schoolku_backend/internals/features/finance/payroll/route"
	dashboardRoute "schoolku_backend/internals/features/home/dashboard/route"
	academicsRoute "schoolku_backend/internals/features/school/academics/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	schoolRoute "schoolku_backend/internals/features/tenancy/schools/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
)

/* =========================================================
   Komposisi route:
   /api/auth    → register/login/refresh (tanpa auth)
   /api/public  → read publik + pre-enroll + webhook pembayaran
   /api/u       → user login (logout, me) — TANPA gate sekolah aktif
   /api/a       → admin sekolah — auth + scope + role + gate aktif
   /api/o       → owner global — auth + owner
========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authJWT := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		BlacklistChecker: func(raw string) (bool, error) {
			return helperAuth.IsBlacklisted(context.Background(), db, raw, configs.JWTSecret)
		},
	})

	// ---------- tanpa auth ----------
	auth := api.Group("/auth")
	authRoute.AuthPublicRoutes(auth, db)

	public := api.Group("/public")
	schoolRoute.SchoolPublicRoutes(public, db)
	studentRoute.StudentPublicRoutes(public, db)
	billRoute.BillPublicRoutes(public, db)

	// ---------- user login (logout harus tetap bisa saat suspended) ----------
	user := api.Group("/u", authJWT)
	authRoute.AuthProtectedRoutes(user, db)

	// ---------- admin sekolah (digate trial/suspend) ----------
	admin := api.Group("/a",
		authJWT,
		featureMw.UseSchoolScope(),
		featureMw.IsSchoolAdmin(),
		featureMw.RequireSchoolActive(db),
	)
	schoolRoute.SchoolAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	academicsRoute.AcademicsAdminRoutes(admin, db)
	billRoute.BillAdminRoutes(admin, db)
	payrollRoute.PayrollAdminRoutes(admin, db)
	documentRoute.DocumentAdminRoutes(admin, db)
	backupRoute.BackupAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)

	// ---------- owner global ----------
	owner := api.Group("/o",
		authJWT,
		featureMw.IsOwnerGlobal(),
	)
	schoolRoute.SchoolOwnerRoutes(owner, db)
	userRoute.UserOwnerRoutes(owner, db)
}
