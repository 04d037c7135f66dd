package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/documents/model"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{model.DocumentSignatureUnsigned, model.DocumentSignaturePending},
		{model.DocumentSignaturePending, model.DocumentSignatureSigned},
		{model.DocumentSignaturePending, model.DocumentSignatureDeclined},
		{model.DocumentSignatureDeclined, model.DocumentSignaturePending},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s → %s", tr[0], tr[1])
	}

	denied := [][2]string{
		{model.DocumentSignatureUnsigned, model.DocumentSignatureSigned},
		{model.DocumentSignatureUnsigned, model.DocumentSignatureDeclined},
		{model.DocumentSignatureSigned, model.DocumentSignaturePending},
		{model.DocumentSignatureSigned, model.DocumentSignatureDeclined},
		{model.DocumentSignatureDeclined, model.DocumentSignatureSigned},
		{"garbage", model.DocumentSignaturePending},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s → %s", tr[0], tr[1])
	}
}

func TestApplySignatureTransition_Signed(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	signer := uuid.New()
	doc := &model.DocumentModel{DocumentSignatureStatus: model.DocumentSignaturePending}

	require.NoError(t, ApplySignatureTransition(doc, model.DocumentSignatureSigned, &signer, "", now))
	assert.Equal(t, model.DocumentSignatureSigned, doc.DocumentSignatureStatus)
	require.NotNil(t, doc.DocumentSignedBy)
	assert.Equal(t, signer, *doc.DocumentSignedBy)
	require.NotNil(t, doc.DocumentSignedAt)
	assert.True(t, doc.DocumentSignedAt.Equal(now))
}

func TestApplySignatureTransition_SignedNeedsSigner(t *testing.T) {
	doc := &model.DocumentModel{DocumentSignatureStatus: model.DocumentSignaturePending}

	err := ApplySignatureTransition(doc, model.DocumentSignatureSigned, nil, "", time.Now())
	require.Error(t, err)
	fe, isFiber := err.(*fiber.Error)
	require.True(t, isFiber)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, model.DocumentSignaturePending, doc.DocumentSignatureStatus, "status tidak berubah")
}

func TestApplySignatureTransition_DeclinedNeedsReason(t *testing.T) {
	doc := &model.DocumentModel{DocumentSignatureStatus: model.DocumentSignaturePending}

	err := ApplySignatureTransition(doc, model.DocumentSignatureDeclined, nil, "", time.Now())
	require.Error(t, err)

	require.NoError(t, ApplySignatureTransition(doc, model.DocumentSignatureDeclined, nil, "data tidak lengkap", time.Now()))
	assert.Equal(t, model.DocumentSignatureDeclined, doc.DocumentSignatureStatus)
	assert.Equal(t, "data tidak lengkap", doc.DocumentDeclineReason)
}

func TestApplySignatureTransition_ResubmitClearsReason(t *testing.T) {
	doc := &model.DocumentModel{
		DocumentSignatureStatus: model.DocumentSignatureDeclined,
		DocumentDeclineReason:   "data tidak lengkap",
	}

	require.NoError(t, ApplySignatureTransition(doc, model.DocumentSignaturePending, nil, "", time.Now()))
	assert.Equal(t, model.DocumentSignaturePending, doc.DocumentSignatureStatus)
	assert.Empty(t, doc.DocumentDeclineReason)
}

func TestApplySignatureTransition_SignedIsFinal(t *testing.T) {
	signer := uuid.New()
	doc := &model.DocumentModel{
		DocumentSignatureStatus: model.DocumentSignatureSigned,
		DocumentSignedBy:        &signer,
	}

	for _, to := range []string{
		model.DocumentSignaturePending,
		model.DocumentSignatureDeclined,
		model.DocumentSignatureUnsigned,
	} {
		err := ApplySignatureTransition(doc, to, nil, "x", time.Now())
		require.Error(t, err, to)
		fe, isFiber := err.(*fiber.Error)
		require.True(t, isFiber)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	}
}
