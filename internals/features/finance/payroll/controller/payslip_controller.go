package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payroll/dto"
	"schoolku_backend/internals/features/finance/payroll/model"
	"schoolku_backend/internals/features/finance/payroll/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PayslipController struct {
	DB *gorm.DB
}

func NewPayslipController(db *gorm.DB) *PayslipController {
	return &PayslipController{DB: db}
}

// GET /api/a/payslips?period=&employee_id=&page=&per_page=
func (ctl *PayslipController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.PayslipModel{}).
		Where("payslip_school_id = ?", schoolID)
	if period := strings.TrimSpace(c.Query("period")); period != "" {
		if err := service.ValidatePeriod(period); err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("payslip_period = ?", period)
	}
	if eid := strings.TrimSpace(c.Query("employee_id")); eid != "" {
		q = q.Where("payslip_employee_id = ?", eid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PayslipModel
	if err := q.Order("payslip_period DESC, payslip_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar slip gaji",
		dto.NewPayslipResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/a/payslips — gaji pokok diambil dari master pegawai saat dibuat
func (ctl *PayslipController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePayslipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := service.ValidatePeriod(req.PayslipPeriod); err != nil {
		return helper.FromFiberError(c, err)
	}

	var emp model.EmployeeModel
	if err := ctl.DB.
		First(&emp, "employee_id = ? AND employee_school_id = ?", req.PayslipEmployeeID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if emp.EmployeeStatus != model.EmployeeStatusActive {
		return helper.Error(c, fiber.StatusConflict, "Pegawai tidak aktif")
	}

	net, err := service.ComputeNetPay(emp.EmployeeBaseSalary, req.PayslipAllowance, req.PayslipDeduction)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	slip := &model.PayslipModel{
		PayslipSchoolID:   schoolID,
		PayslipEmployeeID: emp.EmployeeID,
		PayslipPeriod:     req.PayslipPeriod,
		PayslipBaseSalary: emp.EmployeeBaseSalary,
		PayslipAllowance:  req.PayslipAllowance,
		PayslipDeduction:  req.PayslipDeduction,
		PayslipNetPay:     net,
		PayslipStatus:     model.PayslipStatusDraft,
		PayslipNotes:      req.PayslipNotes,
	}
	if err := ctl.DB.Create(slip).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slip gaji periode ini sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slip gaji dibuat", dto.NewPayslipResponse(slip))
}

// POST /api/a/payslips/:payslip_id/mark-paid
func (ctl *PayslipController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := getUUIDParam(c, "payslip_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var slip model.PayslipModel
	if err := ctl.DB.
		First(&slip, "payslip_id = ? AND payslip_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Slip gaji tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if slip.PayslipStatus == model.PayslipStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Slip gaji sudah dibayar")
	}

	now := time.Now()
	if err := ctl.DB.Model(&slip).
		Select("payslip_status", "payslip_paid_at", "payslip_updated_at").
		Updates(map[string]interface{}{
			"payslip_status":  model.PayslipStatusPaid,
			"payslip_paid_at": now,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	slip.PayslipStatus = model.PayslipStatusPaid
	slip.PayslipPaidAt = &now
	return helper.Success(c, "Slip gaji ditandai lunas", dto.NewPayslipResponse(&slip))
}

// DELETE /api/a/payslips/:payslip_id — hanya draft
func (ctl *PayslipController) SoftDelete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := getUUIDParam(c, "payslip_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var slip model.PayslipModel
	if err := ctl.DB.
		First(&slip, "payslip_id = ? AND payslip_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Slip gaji tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if slip.PayslipStatus == model.PayslipStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Slip gaji lunas tidak bisa dihapus")
	}
	if err := ctl.DB.Delete(&slip).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Slip gaji dihapus", fiber.Map{"payslip_id": id})
}
