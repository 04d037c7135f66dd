// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// SchoolRoleClaim: satu entry klaim school_roles.
type SchoolRoleClaim struct {
	SchoolID string   `json:"school_id"`
	Roles    []string `json:"roles"`
}

// BuildSchoolRoleClaims memuat keanggotaan tenant user dari school_admins.
func BuildSchoolRoleClaims(db *gorm.DB, userID uuid.UUID) ([]SchoolRoleClaim, error) {
	var rows []userModel.SchoolAdminModel
	if err := db.
		Where("school_admin_user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	bySchool := map[string][]string{}
	order := []string{}
	for _, r := range rows {
		key := r.SchoolAdminSchoolID.String()
		if _, seen := bySchool[key]; !seen {
			order = append(order, key)
		}
		bySchool[key] = append(bySchool[key], r.SchoolAdminRole)
	}

	out := make([]SchoolRoleClaim, 0, len(order))
	for _, key := range order {
		out = append(out, SchoolRoleClaim{SchoolID: key, Roles: bySchool[key]})
	}
	return out, nil
}

// CreateAccessToken menandatangani access token HS256 dengan klaim
// yang dihidrasi middleware AuthJWT.
func CreateAccessToken(u *userModel.UserModel, schoolRoles []SchoolRoleClaim, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"id":           u.UserID.String(),
		"user_name":    u.UserName,
		"roles_global": []string(u.RolesGlobal),
		"school_roles": schoolRoles,
		"is_owner":     u.HasGlobalRole("owner"),
		"iat":          now.Unix(),
		"exp":          now.Add(AccessTokenTTL).Unix(),
	}
	// single-tenant session: langsung tanam school aktif
	if len(schoolRoles) == 1 {
		claims["school_id"] = schoolRoles[0].SchoolID
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// CreateRefreshToken menandatangani refresh token dan menyimpan HASH-nya.
func CreateRefreshToken(db *gorm.DB, userID uuid.UUID, userAgent, ip string, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	rec := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      ComputeRefreshHash(signed),
		RefreshTokenExpiresAt: now.Add(RefreshTokenTTL),
	}
	if userAgent != "" {
		rec.RefreshTokenUserAgent = &userAgent
	}
	if ip != "" {
		rec.RefreshTokenIP = &ip
	}
	if err := db.Create(rec).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// ComputeRefreshHash: HMAC-SHA256(refresh token, refresh secret) hex.
func ComputeRefreshHash(raw string) string {
	m := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

// ParseRefreshToken memverifikasi refresh JWT dan mengembalikan user id.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

// ConsumeRefreshToken (ROTATE): tandai revoked bila masih aktif.
// gorm.ErrRecordNotFound bila token tidak dikenal / sudah dipakai.
func ConsumeRefreshToken(db *gorm.DB, raw string, now time.Time) (uuid.UUID, error) {
	userID, err := ParseRefreshToken(raw)
	if err != nil {
		return uuid.Nil, err
	}

	res := db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > ?",
			ComputeRefreshHash(raw), now).
		Update("refresh_token_revoked_at", now)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return userID, nil
}

// RevokeAllRefreshTokens mencabut seluruh sesi user (dipakai saat logout-all / reset password).
func RevokeAllRefreshTokens(db *gorm.DB, userID uuid.UUID, now time.Time) error {
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL", userID).
		Update("refresh_token_revoked_at", now).Error
}
