// file: internals/features/documents/dto/document_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/documents/model"
)

type CreateDocumentRequest struct {
	DocumentTitle   string         `json:"document_title" validate:"required,min=3,max=200"`
	DocumentType    string         `json:"document_type" validate:"omitempty,max=50"`
	DocumentPayload datatypes.JSON `json:"document_payload"`
}

func (r *CreateDocumentRequest) ToModel(schoolID uuid.UUID) *model.DocumentModel {
	return &model.DocumentModel{
		DocumentSchoolID:        schoolID,
		DocumentTitle:           r.DocumentTitle,
		DocumentType:            r.DocumentType,
		DocumentPayload:         r.DocumentPayload,
		DocumentSignatureStatus: model.DocumentSignatureUnsigned,
	}
}

type UpdateDocumentRequest struct {
	DocumentTitle   *string        `json:"document_title" validate:"omitempty,min=3,max=200"`
	DocumentType    *string        `json:"document_type" validate:"omitempty,max=50"`
	DocumentPayload datatypes.JSON `json:"document_payload"`
}

func (r *UpdateDocumentRequest) ApplyToModel(m *model.DocumentModel) {
	if r.DocumentTitle != nil {
		m.DocumentTitle = *r.DocumentTitle
	}
	if r.DocumentType != nil {
		m.DocumentType = *r.DocumentType
	}
	if len(r.DocumentPayload) > 0 {
		m.DocumentPayload = r.DocumentPayload
	}
}

// SetSignatureStatusRequest: target status + konteks transisi.
type SetSignatureStatusRequest struct {
	SignatureStatus string `json:"signature_status" validate:"required,oneof=pending signed declined"`
	DeclineReason   string `json:"decline_reason" validate:"omitempty,max=500"`
}

type DocumentResponse struct {
	DocumentID      string         `json:"document_id"`
	DocumentTitle   string         `json:"document_title"`
	DocumentType    string         `json:"document_type,omitempty"`
	DocumentPayload datatypes.JSON `json:"document_payload,omitempty"`

	DocumentFileURL *string `json:"document_file_url,omitempty"`

	DocumentSignatureStatus string     `json:"document_signature_status"`
	DocumentSignedBy        *uuid.UUID `json:"document_signed_by,omitempty"`
	DocumentSignedAt        *time.Time `json:"document_signed_at,omitempty"`
	DocumentDeclineReason   string     `json:"document_decline_reason,omitempty"`

	DocumentCreatedAt time.Time `json:"document_created_at"`
	DocumentUpdatedAt time.Time `json:"document_updated_at"`
}

func NewDocumentResponse(m *model.DocumentModel) *DocumentResponse {
	if m == nil {
		return nil
	}
	return &DocumentResponse{
		DocumentID:              m.DocumentID.String(),
		DocumentTitle:           m.DocumentTitle,
		DocumentType:            m.DocumentType,
		DocumentPayload:         m.DocumentPayload,
		DocumentFileURL:         m.DocumentFileURL,
		DocumentSignatureStatus: m.DocumentSignatureStatus,
		DocumentSignedBy:        m.DocumentSignedBy,
		DocumentSignedAt:        m.DocumentSignedAt,
		DocumentDeclineReason:   m.DocumentDeclineReason,
		DocumentCreatedAt:       m.DocumentCreatedAt,
		DocumentUpdatedAt:       m.DocumentUpdatedAt,
	}
}

func NewDocumentResponses(ms []model.DocumentModel) []*DocumentResponse {
	out := make([]*DocumentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDocumentResponse(&ms[i]))
	}
	return out
}
