package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payroll/dto"
	"schoolku_backend/internals/features/finance/payroll/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *EmployeeController) findMine(c *fiber.Ctx, id uuid.UUID) (*model.EmployeeModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var emp model.EmployeeModel
	if err := ctl.DB.
		First(&emp, "employee_id = ? AND employee_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return nil, err
	}
	return &emp, nil
}

// GET /api/a/employees?status=&q=&page=&per_page=
func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.EmployeeModel{}).
		Where("employee_school_id = ?", schoolID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("employee_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("employee_name ILIKE ? OR employee_position ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EmployeeModel
	if err := q.Order("employee_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar pegawai",
		dto.NewEmployeeResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/a/employees
func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	emp := req.ToModel(schoolID)
	if err := ctl.DB.Create(emp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai dibuat", dto.NewEmployeeResponse(emp))
}

// GET /api/a/employees/:employee_id
func (ctl *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "employee_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	emp, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail pegawai", dto.NewEmployeeResponse(emp))
}

// PATCH /api/a/employees/:employee_id
func (ctl *EmployeeController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "employee_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	emp, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(emp)
	if err := ctl.DB.Save(emp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Pegawai diperbarui", dto.NewEmployeeResponse(emp))
}

// DELETE /api/a/employees/:employee_id
func (ctl *EmployeeController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "employee_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	emp, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(emp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Pegawai dihapus", fiber.Map{"employee_id": id})
}
