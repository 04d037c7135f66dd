package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/tenancy/schools/model"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   Pendaftaran publik (tanpa login). Masuk sebagai pre_enrolled
   dengan kode sementara; kode resmi diterbitkan saat admin approve.
========================================================= */

type PreEnrollmentController struct {
	DB *gorm.DB
}

func NewPreEnrollmentController(db *gorm.DB) *PreEnrollmentController {
	return &PreEnrollmentController{DB: db}
}

// POST /api/public/:school_slug/pre-enroll
func (ctl *PreEnrollmentController) PreEnroll(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("school_slug"))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "school_slug wajib diisi")
	}

	var sch schoolModel.SchoolModel
	if err := ctl.DB.
		Select("school_id", "school_status").
		First(&sch, "school_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	// sekolah suspended tidak menerima pendaftaran baru
	if sch.SchoolStatus == schoolModel.SchoolStatusSuspended {
		return helper.Error(c, fiber.StatusLocked, "Sekolah tidak menerima pendaftaran saat ini")
	}

	var req dto.PreEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	stu := req.ToModel(sch.SchoolID)
	// kode sementara, diganti kode YYYYNNN saat approve
	stu.StudentRegistrationCode = model.TempRegistrationCode()

	if err := ctl.DB.Create(stu).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] pre-enroll masuk: school=%s student=%s", sch.SchoolID, stu.StudentID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran diterima, menunggu persetujuan admin",
		dto.NewStudentResponse(stu))
}
