package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentGradeController struct {
	DB *gorm.DB
}

func NewStudentGradeController(db *gorm.DB) *StudentGradeController {
	return &StudentGradeController{DB: db}
}

// GET /api/a/students/:student_id/grades?term=
func (ctl *StudentGradeController) ListByStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := getUUIDParam(c, "student_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.
		Where("student_grade_school_id = ? AND student_grade_student_id = ?", schoolID, studentID)
	if term := strings.TrimSpace(c.Query("term")); term != "" {
		q = q.Where("student_grade_term = ?", term)
	}

	var rows []model.StudentGradeModel
	if err := q.Order("student_grade_term ASC, student_grade_subject ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Daftar nilai", dto.NewStudentGradeResponses(rows))
}

// PUT /api/a/grades — upsert per (student, subject, term)
func (ctl *StudentGradeController) Upsert(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpsertStudentGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// siswa harus milik tenant ini
	var stu studentModel.StudentModel
	if err := ctl.DB.Select("student_id").
		First(&stu, "student_id = ? AND student_school_id = ?", req.StudentGradeStudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	grade := req.ToModel(schoolID)
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_grade_student_id"},
			{Name: "student_grade_subject"},
			{Name: "student_grade_term"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_grade_score", "student_grade_notes", "student_grade_updated_at",
		}),
	}).Create(grade).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Nilai disimpan", dto.NewStudentGradeResponse(grade))
}

// DELETE /api/a/grades/:student_grade_id
func (ctl *StudentGradeController) SoftDelete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := getUUIDParam(c, "student_grade_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.
		Where("student_grade_id = ? AND student_grade_school_id = ?", id, schoolID).
		Delete(&model.StudentGradeModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.Success(c, "Nilai dihapus", fiber.Map{"student_grade_id": id})
}
