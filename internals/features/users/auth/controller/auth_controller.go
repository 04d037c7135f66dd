package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* =========================================================
   REGISTER
========================================================= */

type registerRequest struct {
	UserName         string `json:"user_name" validate:"required,min=3,max=50"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	SecurityQuestion string `json:"security_question" validate:"required,min=5"`
	SecurityAnswer   string `json:"security_answer" validate:"required,min=2"`
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashedPass, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	hashedAnswer, err := service.HashSecurityAnswer(req.SecurityAnswer)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	u := &userModel.UserModel{
		UserName:         req.UserName,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Password:         hashedPass,
		RolesGlobal:      pq.StringArray{"user"},
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   hashedAnswer,
		IsActive:         true,
	}
	if err := ctl.DB.Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] user baru terdaftar: %s", u.Email)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"user_id":   u.UserID,
		"user_name": u.UserName,
		"email":     u.Email,
	})
}

/* =========================================================
   LOGIN (email+password & google)
========================================================= */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctl.DB.
		First(&u, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := service.CheckPasswordHash(u.Password, req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ctl.issueSession(c, &u)
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /api/auth/login-google — login/daftar lewat Google id_token
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	prof, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}

	var u userModel.UserModel
	err = ctl.DB.
		First(&u, "google_id = ? OR email = ?", prof.GoogleID, strings.ToLower(prof.Email)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// auto-register akun google
		name := prof.Name
		if name == "" {
			name = strings.Split(prof.Email, "@")[0]
		}
		u = userModel.UserModel{
			UserName:    name,
			Email:       strings.ToLower(prof.Email),
			Password:    "-", // tidak bisa login password
			GoogleID:    &prof.GoogleID,
			RolesGlobal: pq.StringArray{"user"},
			IsActive:    true,
		}
		if err := ctl.DB.Create(&u).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		log.Printf("[INFO] user google baru: %s", u.Email)
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	default:
		if u.GoogleID == nil {
			// tautkan akun lama ke google
			if err := ctl.DB.Model(&u).Update("google_id", prof.GoogleID).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, err.Error())
			}
		}
	}

	return ctl.issueSession(c, &u)
}

// issueSession: terbitkan access+refresh dan set cookie refresh.
func (ctl *AuthController) issueSession(c *fiber.Ctx, u *userModel.UserModel) error {
	if !u.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	now := time.Now().UTC()
	schoolRoles, err := service.BuildSchoolRoleClaims(ctl.DB, u.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil roles")
	}

	access, err := service.CreateAccessToken(u, schoolRoles, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := service.CreateRefreshToken(ctl.DB, u.UserID, c.Get("User-Agent"), c.IP(), now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(service.RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"user_id":      u.UserID,
			"user_name":    u.UserName,
			"email":        u.Email,
			"roles_global": u.RolesGlobal,
			"school_roles": schoolRoles,
		},
	})
}

/* =========================================================
   REFRESH (rotating) & LOGOUT
========================================================= */

// POST /api/auth/refresh-token
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	now := time.Now().UTC()
	userID, err := service.ConsumeRefreshToken(ctl.DB, raw, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	return ctl.issueSession(c, &u)
}

// POST /api/auth/logout — blacklist access token + revoke refresh.
// Terpasang DI LUAR gate RequireSchoolActive supaya sekolah suspended
// tetap bisa sign-out.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if raw := helperAuth.GetRawAccessToken(c); raw != "" {
		exp := time.Now().Add(service.AccessTokenTTL)
		if err := helperAuth.BlacklistAdd(c.Context(), ctl.DB, raw, configs.JWTSecret, exp); err != nil {
			log.Printf("[WARN] gagal blacklist token: %v", err)
		}
	}
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if _, err := service.ConsumeRefreshToken(ctl.DB, refresh, time.Now().UTC()); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] gagal revoke refresh token: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.Success(c, "Logout berhasil", nil)
}

/* =========================================================
   SECURITY QUESTION RESET
========================================================= */

// GET /api/auth/security-question?email=
func (ctl *AuthController) GetSecurityQuestion(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return helper.Error(c, fiber.StatusBadRequest, "email wajib diisi")
	}

	var u userModel.UserModel
	if err := ctl.DB.Select("security_question").
		First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if u.SecurityQuestion == "" {
		return helper.Error(c, fiber.StatusNotFound, "Akun ini tidak memiliki pertanyaan keamanan")
	}
	return helper.Success(c, "Pertanyaan keamanan", fiber.Map{"security_question": u.SecurityQuestion})
}

type resetPasswordRequest struct {
	Email          string `json:"email" validate:"required,email"`
	SecurityAnswer string `json:"security_answer" validate:"required"`
	NewPassword    string `json:"new_password" validate:"required,min=8"`
}

// POST /api/auth/reset-password
func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctl.DB.
		First(&u, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := service.CheckSecurityAnswer(u.SecurityAnswer, req.SecurityAnswer); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Jawaban keamanan salah")
	}

	newHash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Model(&u).Update("password", newHash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	// paksa login ulang di semua device
	if err := service.RevokeAllRefreshTokens(ctl.DB, u.UserID, time.Now().UTC()); err != nil {
		log.Printf("[WARN] gagal revoke sesi: %v", err)
	}

	return helper.Success(c, "Password berhasil direset", nil)
}

/* =========================================================
   ME
========================================================= */

// GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	schoolRoles, err := service.BuildSchoolRoleClaims(ctl.DB, u.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil roles")
	}
	return helper.Success(c, "Profil saya", fiber.Map{
		"user_id":      u.UserID,
		"user_name":    u.UserName,
		"email":        u.Email,
		"roles_global": u.RolesGlobal,
		"school_roles": schoolRoles,
		"created_at":   u.CreatedAt,
	})
}
