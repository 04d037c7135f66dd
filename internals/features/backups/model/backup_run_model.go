package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BackupRunStatusSuccess = "success"
	BackupRunStatusFailed  = "failed"
)

// Satu baris = satu eksekusi backup per tenant.
type BackupRunModel struct {
	BackupRunID       uuid.UUID `gorm:"column:backup_run_id;type:uuid;default:gen_random_uuid();primaryKey" json:"backup_run_id"`
	BackupRunSchoolID uuid.UUID `gorm:"column:backup_run_school_id;type:uuid;not null;index" json:"backup_run_school_id"`

	BackupRunStatus    string `gorm:"column:backup_run_status;type:varchar(20);not null" json:"backup_run_status" validate:"required,oneof=success failed"`
	BackupRunSizeBytes int64  `gorm:"column:backup_run_size_bytes;not null;default:0" json:"backup_run_size_bytes"`
	BackupRunFileURL   string `gorm:"column:backup_run_file_url;type:text" json:"backup_run_file_url,omitempty"`
	BackupRunError     string `gorm:"column:backup_run_error;type:text" json:"backup_run_error,omitempty"`

	BackupRunStartedAt  time.Time  `gorm:"column:backup_run_started_at;type:timestamptz;not null" json:"backup_run_started_at"`
	BackupRunFinishedAt *time.Time `gorm:"column:backup_run_finished_at;type:timestamptz" json:"backup_run_finished_at,omitempty"`

	BackupRunCreatedAt time.Time      `gorm:"column:backup_run_created_at;autoCreateTime" json:"backup_run_created_at"`
	BackupRunDeletedAt gorm.DeletedAt `gorm:"column:backup_run_deleted_at;index" json:"backup_run_deleted_at,omitempty"`
}

func (BackupRunModel) TableName() string {
	return "backup_runs"
}
