package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password dengan bcrypt default cost.
func HashPassword(plain string) (string, error) {
	if len(plain) < 8 {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "Password minimal 8 karakter")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan input.
func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// HashSecurityAnswer: jawaban pertanyaan keamanan dinormalkan lalu di-bcrypt.
func HashSecurityAnswer(answer string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(answer))
	if norm == "" {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "Jawaban keamanan wajib diisi")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(norm), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckSecurityAnswer membandingkan jawaban (dinormalkan) dengan hash.
func CheckSecurityAnswer(hashed, answer string) error {
	norm := strings.ToLower(strings.TrimSpace(answer))
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(norm))
}
