package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/documents/dto"
	"schoolku_backend/internals/features/documents/model"
	"schoolku_backend/internals/features/documents/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *DocumentController) findMine(c *fiber.Ctx, id uuid.UUID) (*model.DocumentModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var doc model.DocumentModel
	if err := ctl.DB.
		First(&doc, "document_id = ? AND document_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		return nil, err
	}
	return &doc, nil
}

// GET /api/a/documents?signature_status=&type=&page=&per_page=
func (ctl *DocumentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.DocumentModel{}).
		Where("document_school_id = ?", schoolID)
	if ss := strings.TrimSpace(c.Query("signature_status")); ss != "" {
		q = q.Where("document_signature_status = ?", ss)
	}
	if dt := strings.TrimSpace(c.Query("type")); dt != "" {
		q = q.Where("document_type = ?", dt)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.DocumentModel
	if err := q.Order("document_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar dokumen",
		dto.NewDocumentResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/a/documents
func (ctl *DocumentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	doc := req.ToModel(schoolID)
	if err := ctl.DB.Create(doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dokumen dibuat", dto.NewDocumentResponse(doc))
}

// GET /api/a/documents/:document_id
func (ctl *DocumentController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "document_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail dokumen", dto.NewDocumentResponse(doc))
}

// PATCH /api/a/documents/:document_id — isi hanya bisa diubah sebelum signed
func (ctl *DocumentController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "document_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if doc.DocumentSignatureStatus == model.DocumentSignatureSigned {
		return helper.Error(c, fiber.StatusConflict, "Dokumen yang sudah ditandatangani tidak bisa diubah")
	}

	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(doc)
	if err := ctl.DB.Save(doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Dokumen diperbarui", dto.NewDocumentResponse(doc))
}

// PATCH /api/a/documents/:document_id/signature — jalankan transisi status
func (ctl *DocumentController) SetSignatureStatus(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "document_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetSignatureStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var signedBy *uuid.UUID
	if req.SignatureStatus == model.DocumentSignatureSigned {
		userID, uidErr := helperAuth.GetUserIDFromToken(c)
		if uidErr != nil {
			return helper.FromFiberError(c, uidErr)
		}
		signedBy = &userID
	}

	if err := service.ApplySignatureTransition(doc, req.SignatureStatus, signedBy, req.DeclineReason, time.Now()); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Save(doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Status tanda tangan diperbarui", dto.NewDocumentResponse(doc))
}

// DELETE /api/a/documents/:document_id
func (ctl *DocumentController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "document_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Dokumen dihapus", fiber.Map{"document_id": id})
}
