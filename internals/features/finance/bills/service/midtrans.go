package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"schoolku_backend/internals/features/finance/bills/model"
)

var SnapClient snap.Client

var serverKey string

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(key string, production bool) {
	serverKey = key
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(key, env)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu tagihan siswa.
func GenerateSnapToken(b *model.StudentBillModel, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  b.StudentBillOrderID,
			GrossAmt: int64(b.StudentBillAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    b.StudentBillID.String(),
			Name:  b.StudentBillTitle,
			Price: int64(b.StudentBillAmount),
			Qty:   1,
		}},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// VerifyWebhookSignature mencocokkan signature_key notifikasi midtrans:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifyWebhookSignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

// MapTransactionStatus memetakan transaction_status midtrans → status tagihan.
func MapTransactionStatus(transactionStatus string) string {
	switch transactionStatus {
	case "settlement", "capture", "success":
		return model.BillStatusPaid
	case "deny", "cancel", "expire", "failure":
		return model.BillStatusCancelled
	default:
		return model.BillStatusPending
	}
}
