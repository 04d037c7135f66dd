package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (diisi oleh middleware AuthJWT)
   ============================================ */

const (
	LocUserID         = "user_id"          // string UUID
	LocUserName       = "user_name"        // string
	LocRolesGlobal    = "roles_global"     // []string
	LocSchoolRoles    = "school_roles"     // []SchoolRolesEntry | []map[string]any
	LocIsOwner        = "is_owner"         // bool | "true"/"false"
	LocActiveSchoolID = "active_school_id" // string UUID
	LocSchoolID       = "school_id"        // string UUID (single-tenant session)
	LocJWTClaims      = "jwt_claims"       // jwt.MapClaims mentah
)

/* ============================================
   Structured claims
   ============================================ */

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

/* ============================================
   Low-level locals readers
   ============================================ */

func localString(c *fiber.Ctx, key string) string {
	switch t := c.Locals(key).(type) {
	case string:
		return strings.TrimSpace(t)
	case uuid.UUID:
		if t != uuid.Nil {
			return t.String()
		}
	}
	return ""
}

func localStrings(c *fiber.Ctx, key string) []string {
	out := make([]string, 0, 2)
	switch t := c.Locals(key).(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, strings.ToLower(s))
			}
		}
	case []interface{}:
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.ToLower(strings.TrimSpace(s)))
			}
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

/* ============================================
   Roles global
   ============================================ */

func GetRolesGlobal(c *fiber.Ctx) []string {
	return localStrings(c, LocRolesGlobal)
}

func HasGlobalRole(c *fiber.Ctx, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range GetRolesGlobal(c) {
		if r == role {
			return true
		}
	}
	return false
}

// IsOwner: klaim is_owner eksplisit ATAU role global "owner".
func IsOwner(c *fiber.Ctx) bool {
	switch t := c.Locals(LocIsOwner).(type) {
	case bool:
		if t {
			return true
		}
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if s == "true" || s == "1" || s == "yes" {
			return true
		}
	}
	return HasGlobalRole(c, "owner")
}

/* ============================================
   School roles (multi-tenant claim)
   ============================================ */

// ParseSchoolRoles menormalkan klaim school_roles dari locals
// ke bentuk []SchoolRolesEntry apapun representasi aslinya.
func ParseSchoolRoles(c *fiber.Ctx) []SchoolRolesEntry {
	v := c.Locals(LocSchoolRoles)
	if v == nil {
		return nil
	}

	parseOne := func(m map[string]any) (SchoolRolesEntry, bool) {
		var e SchoolRolesEntry
		if s, ok := m["school_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				e.SchoolID = id
			}
		}
		if rr, ok := m["roles"].([]interface{}); ok {
			for _, it := range rr {
				if rs, ok := it.(string); ok {
					if rs = strings.ToLower(strings.TrimSpace(rs)); rs != "" {
						e.Roles = append(e.Roles, rs)
					}
				}
			}
		}
		return e, e.SchoolID != uuid.Nil && len(e.Roles) > 0
	}

	out := make([]SchoolRolesEntry, 0, 2)
	switch arr := v.(type) {
	case []SchoolRolesEntry:
		return arr
	case []map[string]any:
		for _, m := range arr {
			if e, ok := parseOne(m); ok {
				out = append(out, e)
			}
		}
	case []interface{}:
		for _, it := range arr {
			if m, ok := it.(map[string]any); ok {
				if e, ok := parseOne(m); ok {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

func HasRoleInSchool(c *fiber.Ctx, schoolID uuid.UUID, roles ...string) bool {
	if schoolID == uuid.Nil {
		return false
	}
	for i := range roles {
		roles[i] = strings.ToLower(strings.TrimSpace(roles[i]))
	}
	for _, e := range ParseSchoolRoles(c) {
		if e.SchoolID != schoolID {
			continue
		}
		for _, have := range e.Roles {
			for _, want := range roles {
				if have == want {
					return true
				}
			}
		}
	}
	return false
}

/* ============================================
   ID getters
   ============================================ */

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := localString(c, LocUserID)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetActiveSchoolID: school aktif dari token (klaim school_id / active_school_id),
// fallback ke satu-satunya entry school_roles bila tunggal.
func GetActiveSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	for _, key := range []string{LocActiveSchoolID, LocSchoolID} {
		if raw := localString(c, key); raw != "" {
			if id, err := uuid.Parse(raw); err == nil && id != uuid.Nil {
				return id, nil
			}
		}
	}
	if entries := ParseSchoolRoles(c); len(entries) == 1 {
		return entries[0].SchoolID, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School aktif tidak ditemukan di token")
}

// GetSchoolIDFromToken adalah alias lama GetActiveSchoolID.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) { return GetActiveSchoolID(c) }

/* ============================================
   Guards (dipakai controller langsung)
   ============================================ */

func EnsureAdminSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	if HasRoleInSchool(c, schoolID, "admin") {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Anda bukan admin di school ini")
}

func EnsureStaffSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	if HasRoleInSchool(c, schoolID, "admin", "staff", "teacher") {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Anda bukan staff di school ini")
}
