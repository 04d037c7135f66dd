package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/backups/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var validate = validator.New()

type BackupRunController struct {
	DB *gorm.DB
}

func NewBackupRunController(db *gorm.DB) *BackupRunController {
	return &BackupRunController{DB: db}
}

type recordBackupRequest struct {
	BackupRunStatus     string     `json:"backup_run_status" validate:"required,oneof=success failed"`
	BackupRunSizeBytes  int64      `json:"backup_run_size_bytes" validate:"min=0"`
	BackupRunFileURL    string     `json:"backup_run_file_url"`
	BackupRunError      string     `json:"backup_run_error"`
	BackupRunStartedAt  time.Time  `json:"backup_run_started_at" validate:"required"`
	BackupRunFinishedAt *time.Time `json:"backup_run_finished_at"`
}

// POST /api/a/backups — catat hasil eksekusi backup
func (ctl *BackupRunController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req recordBackupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.BackupRunStatus == model.BackupRunStatusFailed && req.BackupRunError == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Backup gagal wajib menyertakan pesan error")
	}

	run := &model.BackupRunModel{
		BackupRunSchoolID:   schoolID,
		BackupRunStatus:     req.BackupRunStatus,
		BackupRunSizeBytes:  req.BackupRunSizeBytes,
		BackupRunFileURL:    req.BackupRunFileURL,
		BackupRunError:      req.BackupRunError,
		BackupRunStartedAt:  req.BackupRunStartedAt,
		BackupRunFinishedAt: req.BackupRunFinishedAt,
	}
	if err := ctl.DB.Create(run).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Backup tercatat", run)
}

// GET /api/a/backups/latest
func (ctl *BackupRunController) Latest(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var run model.BackupRunModel
	if err := ctl.DB.
		Where("backup_run_school_id = ?", schoolID).
		Order("backup_run_started_at DESC").
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Belum ada backup")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Backup terakhir", run)
}

// GET /api/a/backups/summary — ringkasan 30 hari terakhir
func (ctl *BackupRunController) Summary(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	since := time.Now().AddDate(0, 0, -30)
	type row struct {
		Status string
		Count  int64
		Bytes  int64
	}
	var rows []row
	if err := ctl.DB.Model(&model.BackupRunModel{}).
		Select("backup_run_status AS status, COUNT(*) AS count, COALESCE(SUM(backup_run_size_bytes),0) AS bytes").
		Where("backup_run_school_id = ? AND backup_run_started_at >= ?", schoolID, since).
		Group("backup_run_status").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	summary := fiber.Map{
		"since":         since,
		"success_count": int64(0),
		"failed_count":  int64(0),
		"total_bytes":   int64(0),
	}
	for _, r := range rows {
		switch r.Status {
		case model.BackupRunStatusSuccess:
			summary["success_count"] = r.Count
			summary["total_bytes"] = r.Bytes
		case model.BackupRunStatusFailed:
			summary["failed_count"] = r.Count
		}
	}
	return helper.Success(c, "Ringkasan backup 30 hari", summary)
}
