package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/tenancy/schools/model"
	schoolService "schoolku_backend/internals/features/tenancy/schools/service"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RequireSchoolActive adalah gate akses tenant: suspended atau trial yang
// sudah lewat deadline diblok dengan 423 + payload trial_state, yang
// dirender client sebagai overlay penuh-layar. Logout TIDAK lewat gate ini
// (dipasang di luar group) supaya sign-out selalu jalan.
//
// Blocked dihitung per request dari expiry — tidak menunggu sweeper
// mem-flip kolom status.
func RequireSchoolActive(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// owner global boleh masuk tenant manapun (layar administrasi)
		if helperAuth.IsOwner(c) {
			return c.Next()
		}

		schoolID, err := helperAuth.GetActiveSchoolID(c)
		if err != nil {
			return err
		}

		var sch schoolModel.SchoolModel
		if err := db.Select("school_id", "school_status", "school_trial_expires_at").
			First(&sch, "school_id = ?", schoolID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
			}
			return err
		}

		st := schoolService.ComputeTrialState(&sch, time.Now())
		if st.Blocked {
			return c.Status(fiber.StatusLocked).JSON(fiber.Map{
				"code":          fiber.StatusLocked,
				"status":        "error",
				"message":       "Akses sekolah diblokir",
				"school_status": sch.SchoolStatus,
				"trial_state":   st,
			})
		}
		return c.Next()
	}
}
