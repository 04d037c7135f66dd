package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	"schoolku_backend/internals/features/school/students/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func getUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

func (ctl *StudentController) findMine(c *fiber.Ctx, id uuid.UUID) (*model.StudentModel, error) {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return nil, err
	}
	var stu model.StudentModel
	if err := ctl.DB.
		First(&stu, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}
	return &stu, nil
}

/* =========================================================
   LIST & DETAIL
========================================================= */

// GET /api/a/students?status=&q=&year=&class_section_id=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_registration_code ILIKE ?", like, like)
	}
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, convErr := strconv.Atoi(yearStr)
		if convErr != nil || !service.ValidYear(year) {
			return helper.Error(c, fiber.StatusBadRequest, "year tidak valid")
		}
		q = q.Where("student_registration_code LIKE ?", strconv.Itoa(year)+"%")
	}
	if csID := strings.TrimSpace(c.Query("class_section_id")); csID != "" {
		id, parseErr := uuid.Parse(csID)
		if parseErr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "class_section_id tidak valid")
		}
		q = q.Where("student_class_section_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_registration_code ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithPagination(c, "Daftar siswa",
		dto.NewStudentResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/a/students/:student_id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stu, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail siswa", dto.NewStudentResponse(stu))
}

/* =========================================================
   CREATE — kode registrasi diterbitkan di transaksi yang sama
   dengan INSERT; advisory lock menutup race paralel.
========================================================= */

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	year := service.DefaultRegistrationYear(now)
	if req.RegistrationYear != nil {
		year = *req.RegistrationYear
	}

	stu := req.ToModel(schoolID)
	stu.StudentEnrolledAt = &now

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		code, genErr := service.GenerateRegistrationCode(tx, schoolID, year)
		if genErr != nil {
			return genErr
		}
		stu.StudentRegistrationCode = code
		return tx.Create(stu).Error
	}); err != nil {
		if errors.Is(err, service.ErrRegistrationCodesExhausted) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Kode registrasi bentrok, coba ulangi")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa terdaftar", dto.NewStudentResponse(stu))
}

// GET /api/a/students/next-code?year= — preview kode berikut (tidak dicadangkan).
// Kode final tetap diterbitkan ulang saat create.
func (ctl *StudentController) NextCode(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	year := service.DefaultRegistrationYear(time.Now())
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		y, convErr := strconv.Atoi(yearStr)
		if convErr != nil || !service.ValidYear(y) {
			return helper.Error(c, fiber.StatusBadRequest, "year tidak valid")
		}
		year = y
	}

	var code string
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var genErr error
		code, genErr = service.GenerateRegistrationCode(tx, schoolID, year)
		return genErr
	}); err != nil {
		if errors.Is(err, service.ErrRegistrationCodesExhausted) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Kode registrasi berikutnya", fiber.Map{
		"registration_code": code,
		"year":              year,
	})
}

/* =========================================================
   UPDATE / STATUS / DELETE
========================================================= */

// PATCH /api/a/students/:student_id
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stu, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(stu)
	if err := ctl.DB.Save(stu).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Siswa diperbarui", dto.NewStudentResponse(stu))
}

// PATCH /api/a/students/:student_id/status
func (ctl *StudentController) SetStatus(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stu, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// pre_enrolled keluar lewat Approve, bukan endpoint ini
	if stu.StudentStatus == model.StudentStatusPreEnrolled {
		return helper.Error(c, fiber.StatusConflict, "Siswa pre-enrolled harus disetujui dulu")
	}

	if err := ctl.DB.Model(stu).
		Select("student_status", "student_updated_at").
		Updates(map[string]interface{}{"student_status": req.StudentStatus}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	stu.StudentStatus = req.StudentStatus
	return helper.Success(c, "Status siswa diperbarui", dto.NewStudentResponse(stu))
}

// DELETE /api/a/students/:student_id (soft delete)
func (ctl *StudentController) SoftDelete(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stu, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(stu).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Siswa dihapus", fiber.Map{"student_id": id})
}

/* =========================================================
   APPROVE PRE-ENROLLMENT
   Kode registrasi resmi baru diterbitkan di sini; sebelum
   disetujui, siswa memegang kode sementara "PRE-xxxx".
========================================================= */

// POST /api/a/students/:student_id/approve?year=
func (ctl *StudentController) ApprovePreEnrollment(c *fiber.Ctx) error {
	id, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	stu, err := ctl.findMine(c, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if stu.StudentStatus != model.StudentStatusPreEnrolled {
		return helper.Error(c, fiber.StatusConflict, "Siswa bukan pre-enrolled")
	}

	now := time.Now()
	year := service.DefaultRegistrationYear(now)
	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		y, convErr := strconv.Atoi(yearStr)
		if convErr != nil || !service.ValidYear(y) {
			return helper.Error(c, fiber.StatusBadRequest, "year tidak valid")
		}
		year = y
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		code, genErr := service.GenerateRegistrationCode(tx, stu.StudentSchoolID, year)
		if genErr != nil {
			return genErr
		}
		stu.StudentRegistrationCode = code
		stu.StudentStatus = model.StudentStatusActive
		stu.StudentEnrolledAt = &now
		return tx.Model(stu).
			Select("student_registration_code", "student_status", "student_enrolled_at", "student_updated_at").
			Updates(map[string]interface{}{
				"student_registration_code": code,
				"student_status":            model.StudentStatusActive,
				"student_enrolled_at":       now,
			}).Error
	}); err != nil {
		if errors.Is(err, service.ErrRegistrationCodesExhausted) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Pendaftaran disetujui", dto.NewStudentResponse(stu))
}
