package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/tenancy/schools/dto"
	"schoolku_backend/internals/features/tenancy/schools/model"
	"schoolku_backend/internals/features/tenancy/schools/service"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

/* =========================================================
   Controller — manajemen tenant oleh owner (super-admin)
========================================================= */

type SchoolOwnerController struct {
	DB *gorm.DB
}

func NewSchoolOwnerController(db *gorm.DB) *SchoolOwnerController {
	return &SchoolOwnerController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func (ctl *SchoolOwnerController) findSchool(id uuid.UUID) (*model.SchoolModel, error) {
	var sch model.SchoolModel
	if err := ctl.DB.First(&sch, "school_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return nil, err
	}
	return &sch, nil
}

/* =========================================================
   LIST (filter + pagination)
   GET /api/o/schools?status=&q=&page=&per_page=
========================================================= */

func (ctl *SchoolOwnerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SchoolModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		normalized, err := service.NormalizeStatus(status)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("school_status = ?", normalized)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(school_name) LIKE ? OR lower(school_slug) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var schools []model.SchoolModel
	if err := q.Order("school_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schools).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar sekolah",
		dto.NewSchoolResponses(schools),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   CREATE — sekolah baru mulai sebagai trial
   POST /api/o/schools
========================================================= */

func (ctl *SchoolOwnerController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	slugBase := req.SchoolSlug
	if strings.TrimSpace(slugBase) == "" {
		slugBase = req.SchoolName
	}
	slug, err := helper.GenerateUniqueSlug(ctl.DB, helper.SlugOptions{
		Table:            "schools",
		SlugColumn:       "school_slug",
		SoftDeleteColumn: "school_deleted_at",
		DefaultBase:      "sekolah",
	}, slugBase)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	trialDays := configs.TrialDefaultDays
	if req.TrialDays != nil {
		trialDays = *req.TrialDays
	}
	now := time.Now()
	expires := now.Add(time.Duration(trialDays) * 24 * time.Hour)

	sch := model.SchoolModel{
		SchoolName:           strings.TrimSpace(req.SchoolName),
		SchoolSlug:           slug,
		SchoolAddress:        req.SchoolAddress,
		SchoolCity:           req.SchoolCity,
		SchoolPhone:          req.SchoolPhone,
		SchoolEmail:          strings.ToLower(strings.TrimSpace(req.SchoolEmail)),
		SchoolStatus:         model.SchoolStatusTrial,
		SchoolTrialExpiresAt: &expires,
	}

	if err := ctl.DB.Create(&sch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug sekolah sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sekolah berhasil dibuat", dto.NewSchoolResponse(&sch))
}

/* =========================================================
   GET / PATCH / DELETE by id
========================================================= */

func (ctl *SchoolOwnerController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sch, err := ctl.findSchool(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail sekolah", dto.NewSchoolResponse(sch))
}

func (ctl *SchoolOwnerController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sch, err := ctl.findSchool(id)
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

func (ctl *SchoolOwnerController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(&model.SchoolModel{}, "school_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Sekolah dihapus", fiber.Map{"school_id": id})
}

/* =========================================================
   SET STATUS — transisi administratif
   PATCH /api/o/schools/:id/status  body {school_status}
========================================================= */

func (ctl *SchoolOwnerController) SetStatus(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sch, err := ctl.findSchool(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetSchoolStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ApplyStatusChange(sch, req.SchoolStatus, time.Now()); err != nil {
		return helper.FromFiberError(c, err)
	}

	// single-statement update: status + expiry saja
	if err := ctl.DB.Model(sch).
		Select("school_status", "school_trial_expires_at", "school_updated_at").
		Updates(sch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Status sekolah diperbarui", dto.NewSchoolResponse(sch))
}

/* =========================================================
   EXTEND TRIAL
   POST /api/o/schools/:id/extend-trial  body {days}
========================================================= */

func (ctl *SchoolOwnerController) ExtendTrial(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sch, err := ctl.findSchool(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ExtendTrialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ExtendTrial(sch, req.Days, time.Now()); err != nil {
		// guard active / days di luar rentang: tidak ada field yang berubah
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Model(sch).
		Select("school_status", "school_trial_expires_at", "school_updated_at").
		Updates(sch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Trial diperpanjang", dto.NewSchoolResponse(sch))
}

/* =========================================================
   UPLOAD LOGO (multipart, field: file) → WebP → Supabase
   POST /api/o/schools/:id/logo
========================================================= */

func (ctl *SchoolOwnerController) UploadLogo(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sch, err := ctl.findSchool(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File logo wajib dikirim (field: file)")
	}

	buf, err := helper.ConvertImageToWebP(fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	filename := helper.GenerateUniqueFilename("school-logos/"+sch.SchoolSlug, helper.WebPFilename(fh.Filename))
	if err := helper.UploadToSupabase("image", filename, "image/webp", buf); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	publicURL := helper.PublicStorageURL("image", filename)
	oldURL := sch.SchoolLogoURL
	sch.SchoolLogoURL = &publicURL
	if err := ctl.DB.Model(sch).Update("school_logo_url", publicURL).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// hapus logo lama best-effort
	if oldURL != nil {
		if bucket, path, err := helper.ExtractSupabasePath(*oldURL); err == nil {
			_ = helper.DeleteFromSupabase(bucket, path)
		}
	}

	return helper.Success(c, "Logo diperbarui", fiber.Map{"school_logo_url": publicURL})
}
