package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/dto"
	"schoolku_backend/internals/features/tenancy/schools/model"
	"schoolku_backend/internals/features/tenancy/schools/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================================================
   Controller — sekolah milik admin yang sedang login
========================================================= */

type SchoolAdminController struct {
	DB *gorm.DB
}

func NewSchoolAdminController(db *gorm.DB) *SchoolAdminController {
	return &SchoolAdminController{DB: db}
}

func (ctl *SchoolAdminController) mySchool(c *fiber.Ctx) (*model.SchoolModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var sch model.SchoolModel
	if err := ctl.DB.First(&sch, "school_id = ?", schoolID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return nil, err
	}
	return &sch, nil
}

// GET /api/a/school — profil sekolah sendiri
func (ctl *SchoolAdminController) GetMine(c *fiber.Ctx) error {
	sch, err := ctl.mySchool(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail sekolah", dto.NewSchoolResponse(sch))
}

// PATCH /api/a/school — partial update profil (bukan status/trial)
func (ctl *SchoolAdminController) PatchMine(c *fiber.Ctx) error {
	sch, err := ctl.mySchool(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(sch)
	if err := ctl.DB.Save(sch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sekolah diperbarui", dto.NewSchoolResponse(sch))
}

// GET /api/a/school/trial-status — data banner countdown.
// Dihitung ulang dari expiry setiap request; tidak menunggu sweeper.
func (ctl *SchoolAdminController) TrialStatus(c *fiber.Ctx) error {
	sch, err := ctl.mySchool(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Status trial", service.ComputeTrialState(sch, time.Now()))
}
