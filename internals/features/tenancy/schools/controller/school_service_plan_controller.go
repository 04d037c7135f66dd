package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/dto"
	"schoolku_backend/internals/features/tenancy/schools/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   Controller — paket layanan (dikelola owner, dibaca publik)
========================================================= */

type SchoolServicePlanController struct {
	DB *gorm.DB
}

func NewSchoolServicePlanController(db *gorm.DB) *SchoolServicePlanController {
	return &SchoolServicePlanController{DB: db}
}

// POST /api/o/service-plans
func (ctl *SchoolServicePlanController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolServicePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Kode plan sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plan dibuat", dto.NewSchoolServicePlanResponse(m))
}

// GET /api/o/service-plans (semua) | GET /api/public/service-plans (aktif saja)
func (ctl *SchoolServicePlanController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SchoolServicePlan{})
	if strings.EqualFold(c.Query("active_only"), "true") || strings.HasPrefix(c.Path(), "/api/public") {
		q = q.Where("school_service_plan_is_active = TRUE")
	}

	var plans []model.SchoolServicePlan
	if err := q.Order("school_service_plan_created_at ASC").Find(&plans).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Daftar plan", dto.NewSchoolServicePlanResponses(plans))
}

// GET /api/o/service-plans/:id
func (ctl *SchoolServicePlanController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var plan model.SchoolServicePlan
	if err := ctl.DB.First(&plan, "school_service_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Detail plan", dto.NewSchoolServicePlanResponse(&plan))
}

// PATCH /api/o/service-plans/:id
func (ctl *SchoolServicePlanController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var plan model.SchoolServicePlan
	if err := ctl.DB.First(&plan, "school_service_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchSchoolServicePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&plan)
	if err := ctl.DB.Save(&plan).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Plan diperbarui", dto.NewSchoolServicePlanResponse(&plan))
}

// DELETE /api/o/service-plans/:id (soft delete)
func (ctl *SchoolServicePlanController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(&model.SchoolServicePlan{}, "school_service_plan_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Plan dihapus", fiber.Map{"school_service_plan_id": id})
}
