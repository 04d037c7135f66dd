// Mesin status tanda tangan dokumen:
// unsigned → pending → signed | declined, declined → pending (ajukan ulang).
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/documents/model"
)

var signatureTransitions = map[string][]string{
	model.DocumentSignatureUnsigned: {model.DocumentSignaturePending},
	model.DocumentSignaturePending:  {model.DocumentSignatureSigned, model.DocumentSignatureDeclined},
	model.DocumentSignatureDeclined: {model.DocumentSignaturePending},
	model.DocumentSignatureSigned:   {}, // final
}

// CanTransition: apakah perpindahan status diizinkan.
func CanTransition(from, to string) bool {
	for _, allowed := range signatureTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ApplySignatureTransition memutasi dokumen sesuai status tujuan.
// signedBy wajib untuk signed; reason wajib untuk declined.
func ApplySignatureTransition(d *model.DocumentModel, to string, signedBy *uuid.UUID, reason string, now time.Time) error {
	if !CanTransition(d.DocumentSignatureStatus, to) {
		return fiber.NewError(fiber.StatusConflict,
			"Perpindahan status "+d.DocumentSignatureStatus+" → "+to+" tidak diizinkan")
	}

	switch to {
	case model.DocumentSignatureSigned:
		if signedBy == nil || *signedBy == uuid.Nil {
			return fiber.NewError(fiber.StatusBadRequest, "Penandatangan wajib diisi")
		}
		d.DocumentSignedBy = signedBy
		d.DocumentSignedAt = &now
		d.DocumentDeclineReason = ""
	case model.DocumentSignatureDeclined:
		if reason == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Alasan penolakan wajib diisi")
		}
		d.DocumentDeclineReason = reason
	case model.DocumentSignaturePending:
		// pengajuan ulang menghapus jejak penolakan sebelumnya
		d.DocumentDeclineReason = ""
	}

	d.DocumentSignatureStatus = to
	return nil
}
