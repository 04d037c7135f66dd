package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status tanda tangan dokumen.
const (
	DocumentSignatureUnsigned = "unsigned"
	DocumentSignaturePending  = "pending"
	DocumentSignatureSigned   = "signed"
	DocumentSignatureDeclined = "declined"
)

type DocumentModel struct {
	DocumentID       uuid.UUID `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentSchoolID uuid.UUID `gorm:"column:document_school_id;type:uuid;not null;index" json:"document_school_id"`

	DocumentTitle string `gorm:"column:document_title;type:varchar(200);not null" json:"document_title" validate:"required,min=3,max=200"`
	DocumentType  string `gorm:"column:document_type;type:varchar(50)" json:"document_type"`

	// isi dokumen terstruktur (template + field yang diisi)
	DocumentPayload datatypes.JSON `gorm:"column:document_payload;type:jsonb" json:"document_payload,omitempty"`

	DocumentFileURL *string `gorm:"column:document_file_url;type:text" json:"document_file_url,omitempty"`

	DocumentSignatureStatus string     `gorm:"column:document_signature_status;type:varchar(20);not null;default:'unsigned'" json:"document_signature_status"`
	DocumentSignedBy        *uuid.UUID `gorm:"column:document_signed_by;type:uuid" json:"document_signed_by,omitempty"`
	DocumentSignedAt        *time.Time `gorm:"column:document_signed_at;type:timestamptz" json:"document_signed_at,omitempty"`
	DocumentDeclineReason   string     `gorm:"column:document_decline_reason;type:text" json:"document_decline_reason,omitempty"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt time.Time      `gorm:"column:document_updated_at;autoUpdateTime" json:"document_updated_at"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index" json:"document_deleted_at,omitempty"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
