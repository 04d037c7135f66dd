package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupModel "schoolku_backend/internals/features/backups/model"
	documentModel "schoolku_backend/internals/features/documents/model"
	billModel "schoolku_backend/internals/features/finance/bills/model"
	academicsModel "schoolku_backend/internals/features/school/academics/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	schoolModel "schoolku_backend/internals/features/tenancy/schools/model"
	schoolService "schoolku_backend/internals/features/tenancy/schools/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================================================
   Dashboard admin sekolah — agregat ringan untuk landing page
========================================================= */

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/a/dashboard
func (ctl *DashboardController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var sch schoolModel.SchoolModel
	if err := ctl.DB.
		Select("school_id", "school_name", "school_status", "school_trial_expires_at").
		First(&sch, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// siswa per status
	type statusCount struct {
		Status string
		Count  int64
	}
	var studentRows []statusCount
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_status AS status, COUNT(*) AS count").
		Where("student_school_id = ?", schoolID).
		Group("student_status").
		Scan(&studentRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	students := fiber.Map{"active": int64(0), "inactive": int64(0), "suspended": int64(0), "pre_enrolled": int64(0)}
	var totalStudents int64
	for _, r := range studentRows {
		students[r.Status] = r.Count
		totalStudents += r.Count
	}
	students["total"] = totalStudents

	var classSections int64
	if err := ctl.DB.Model(&academicsModel.ClassSectionModel{}).
		Where("class_section_school_id = ?", schoolID).
		Count(&classSections).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// tagihan belum lunas
	type billAgg struct {
		Count int64
		Total float64
	}
	var unpaid billAgg
	if err := ctl.DB.Model(&billModel.StudentBillModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(student_bill_amount),0) AS total").
		Where("student_bill_school_id = ? AND student_bill_status IN ?",
			schoolID, []string{billModel.BillStatusUnpaid, billModel.BillStatusPending}).
		Scan(&unpaid).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var pendingDocs int64
	if err := ctl.DB.Model(&documentModel.DocumentModel{}).
		Where("document_school_id = ? AND document_signature_status = ?",
			schoolID, documentModel.DocumentSignaturePending).
		Count(&pendingDocs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// backup terakhir (boleh kosong)
	var lastBackup *backupModel.BackupRunModel
	var run backupModel.BackupRunModel
	if err := ctl.DB.
		Where("backup_run_school_id = ?", schoolID).
		Order("backup_run_started_at DESC").
		First(&run).Error; err == nil {
		lastBackup = &run
	}

	return helper.Success(c, "Dashboard", fiber.Map{
		"school": fiber.Map{
			"school_id":     sch.SchoolID,
			"school_name":   sch.SchoolName,
			"school_status": sch.SchoolStatus,
		},
		"trial_state":        schoolService.ComputeTrialState(&sch, time.Now()),
		"students":           students,
		"class_sections":     classSections,
		"unpaid_bills":       fiber.Map{"count": unpaid.Count, "total_amount": unpaid.Total},
		"pending_signatures": pendingDocs,
		"last_backup":        lastBackup,
	})
}
