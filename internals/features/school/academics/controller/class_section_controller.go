package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type ClassSectionController struct {
	DB *gorm.DB
}

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *ClassSectionController) findMine(c *fiber.Ctx, id uuid.UUID) (*model.ClassSectionModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var cs model.ClassSectionModel
	if err := ctl.DB.
		First(&cs, "class_section_id = ? AND class_section_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	return &cs, nil
}

// GET /api/a/class-sections?academic_year=&page=&per_page=
func (ctl *ClassSectionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.ClassSectionModel{}).
		Where("class_section_school_id = ?", schoolID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("class_section_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassSectionModel
	if err := q.Order("class_section_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar kelas",
		dto.NewClassSectionResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/a/class-sections/:class_section_id — detail + jumlah siswa
func (ctl *ClassSectionController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "class_section_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cs, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := dto.NewClassSectionResponse(cs)
	var count int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_class_section_id = ?", cs.ClassSectionID).
		Count(&count).Error; err == nil {
		resp.ClassSectionStudentCount = &count
	}
	return helper.Success(c, "Detail kelas", resp)
}

// POST /api/a/class-sections
func (ctl *ClassSectionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cs := req.ToModel(schoolID)
	if err := ctl.DB.Create(cs).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas dibuat", dto.NewClassSectionResponse(cs))
}

// PATCH /api/a/class-sections/:class_section_id
func (ctl *ClassSectionController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "class_section_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cs, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(cs)
	if err := ctl.DB.Save(cs).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Kelas diperbarui", dto.NewClassSectionResponse(cs))
}

// DELETE /api/a/class-sections/:class_section_id — ditolak kalau masih ada siswa
func (ctl *ClassSectionController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "class_section_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cs, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_class_section_id = ?", cs.ClassSectionID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Kelas masih memiliki siswa")
	}

	if err := ctl.DB.Delete(cs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Kelas dihapus", fiber.Map{"class_section_id": id})
}
