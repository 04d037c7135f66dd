package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/bills/dto"
	"schoolku_backend/internals/features/finance/bills/model"
	"schoolku_backend/internals/features/finance/bills/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type StudentBillController struct {
	DB *gorm.DB
}

func NewStudentBillController(db *gorm.DB) *StudentBillController {
	return &StudentBillController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *StudentBillController) findMine(c *fiber.Ctx, id uuid.UUID) (*model.StudentBillModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var bill model.StudentBillModel
	if err := ctl.DB.
		First(&bill, "student_bill_id = ? AND student_bill_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return nil, err
	}
	return &bill, nil
}

// GET /api/a/bills?status=&student_id=&page=&per_page=
func (ctl *StudentBillController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.StudentBillModel{}).
		Where("student_bill_school_id = ?", schoolID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_bill_status = ?", status)
	}
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, parseErr := uuid.Parse(sid)
		if parseErr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("student_bill_student_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentBillModel
	if err := q.Order("student_bill_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar tagihan",
		dto.NewStudentBillResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/a/bills
func (ctl *StudentBillController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// siswa harus milik tenant ini
	var stu studentModel.StudentModel
	if err := ctl.DB.Select("student_id").
		First(&stu, "student_id = ? AND student_school_id = ?", req.StudentBillStudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	orderID := fmt.Sprintf("BILL-%d", time.Now().UnixNano())
	bill := req.ToModel(schoolID, orderID)
	if err := ctl.DB.Create(bill).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan dibuat", dto.NewStudentBillResponse(bill))
}

// GET /api/a/bills/:student_bill_id
func (ctl *StudentBillController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_bill_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bill, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail tagihan", dto.NewStudentBillResponse(bill))
}

// POST /api/a/bills/:student_bill_id/pay — buat snap token midtrans
func (ctl *StudentBillController) Pay(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_bill_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bill, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bill.StudentBillStatus == model.BillStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Tagihan sudah lunas")
	}

	var req dto.PayStudentBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := service.GenerateSnapToken(bill, req.PayerName, req.PayerEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	bill.StudentBillPaymentToken = token
	bill.StudentBillStatus = model.BillStatusPending
	if err := ctl.DB.Model(bill).
		Select("student_bill_payment_token", "student_bill_status", "student_bill_updated_at").
		Updates(map[string]interface{}{
			"student_bill_payment_token": token,
			"student_bill_status":        model.BillStatusPending,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Silakan lanjutkan pembayaran", fiber.Map{
		"order_id":   bill.StudentBillOrderID,
		"snap_token": token,
	})
}

// DELETE /api/a/bills/:student_bill_id — hanya tagihan yang belum lunas
func (ctl *StudentBillController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_bill_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bill, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bill.StudentBillStatus == model.BillStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Tagihan lunas tidak bisa dihapus")
	}
	if err := ctl.DB.Delete(bill).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Tagihan dihapus", fiber.Map{"student_bill_id": id})
}
