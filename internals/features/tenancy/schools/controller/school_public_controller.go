package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/dto"
	"schoolku_backend/internals/features/tenancy/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolPublicController struct {
	DB *gorm.DB
}

func NewSchoolPublicController(db *gorm.DB) *SchoolPublicController {
	return &SchoolPublicController{DB: db}
}

// GET /api/public/schools/:school_slug — landing page sekolah
func (ctl *SchoolPublicController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("school_slug")))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}

	var sch model.SchoolModel
	if err := ctl.DB.First(&sch, "lower(school_slug) = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail sekolah", dto.NewSchoolResponse(&sch))
}
