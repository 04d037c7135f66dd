package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/bills/model"
	"schoolku_backend/internals/features/finance/bills/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   Webhook notifikasi Midtrans (tanpa auth; diverifikasi
   lewat signature_key sha512).
========================================================= */

type MidtransWebhookController struct {
	DB *gorm.DB
}

func NewMidtransWebhookController(db *gorm.DB) *MidtransWebhookController {
	return &MidtransWebhookController{DB: db}
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

// POST /api/public/payments/midtrans/webhook
func (ctl *MidtransWebhookController) Handle(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if n.OrderID == "" || n.SignatureKey == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Notifikasi tidak lengkap")
	}

	if !service.VerifyWebhookSignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey) {
		log.Printf("[WARN] webhook midtrans dengan signature salah: order=%s", n.OrderID)
		return helper.Error(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var bill model.StudentBillModel
	if err := ctl.DB.
		First(&bill, "student_bill_order_id = ?", n.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	newStatus := service.MapTransactionStatus(n.TransactionStatus)
	updates := map[string]interface{}{"student_bill_status": newStatus}
	if newStatus == model.BillStatusPaid && bill.StudentBillPaidAt == nil {
		updates["student_bill_paid_at"] = time.Now()
	}

	if err := ctl.DB.Model(&bill).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[INFO] webhook midtrans: order=%s %s → %s", n.OrderID, n.TransactionStatus, newStatus)
	return helper.Success(c, "Notifikasi diproses", fiber.Map{
		"order_id":            n.OrderID,
		"student_bill_status": newStatus,
	})
}
