package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ==========================
   Resolusi school aktif dari request
========================== */

func extractSchoolID(c *fiber.Ctx) string {
	// 1) param (/:school_id)
	if v := strings.TrimSpace(c.Params("school_id")); v != "" {
		return v
	}
	// 2) query (?school_id=)
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		return v
	}
	// 3) header (X-Active-School-ID)
	if v := strings.TrimSpace(c.Get("X-Active-School-ID")); v != "" {
		return v
	}
	return ""
}

// UseSchoolScope memastikan locals active_school_id terisi:
// eksplisit dari request (param/query/header) menang atas klaim token,
// tapi school eksplisit harus cocok dengan keanggotaan token (kecuali owner).
func UseSchoolScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := extractSchoolID(c); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				return fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
			}
			if !helperAuth.IsOwner(c) && !helperAuth.HasRoleInSchool(c, id, constants.AllRoles...) {
				return fiber.NewError(fiber.StatusForbidden, "Anda tidak terdaftar di school ini")
			}
			c.Locals(helperAuth.LocActiveSchoolID, id.String())
			return c.Next()
		}

		// fallback ke klaim token
		if _, err := helperAuth.GetActiveSchoolID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// IsSchoolAdmin: hanya admin sekolah aktif (atau owner global).
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		schoolID, err := helperAuth.GetActiveSchoolID(c)
		if err != nil {
			return err
		}
		if !helperAuth.HasRoleInSchool(c, schoolID, constants.RoleAdmin) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}

// IsOwnerGlobal: guard group /api/o.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsOwner(c) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner(c.Path()))
		}
		return c.Next()
	}
}
