// Lifecycle langganan sekolah: trial → active / suspended.
// Semua aturan transisi & countdown dihitung di sini supaya controller,
// middleware gate, dan sweeper memakai satu sumber kebenaran.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/tenancy/schools/model"
)

const (
	TrialExtendMinDays = 1
	TrialExtendMaxDays = 365

	// Ambang severity countdown banner
	trialWarningWindow  = 72 * time.Hour // ≤ 3 hari
	trialCriticalWindow = 12 * time.Hour
)

// Severity countdown untuk banner client.
const (
	TrialSeverityNormal   = "normal"
	TrialSeverityWarning  = "warning"
	TrialSeverityCritical = "critical"
	TrialSeverityExpired  = "expired"
)

// TrialState adalah potret lifecycle sekolah pada satu titik waktu.
// Blocked dihitung ulang dari expiry, tidak menunggu kolom status di-flip.
type TrialState struct {
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Severity  string     `json:"severity,omitempty"` // hanya terisi saat status trial
	Blocked   bool       `json:"blocked"`

	// Sisa waktu trial, 0 semua bila bukan trial / sudah lewat
	DaysLeft    int `json:"days_left"`
	HoursLeft   int `json:"hours_left"`
	MinutesLeft int `json:"minutes_left"`
	SecondsLeft int `json:"seconds_left"`
}

// NormalizeStatus memvalidasi status sekolah yang dikirim admin/owner.
func NormalizeStatus(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case model.SchoolStatusTrial, model.SchoolStatusActive, model.SchoolStatusSuspended:
		return s, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("status %q tidak dikenal (pilihan: trial, active, suspended)", s))
}

// ApplyStatusChange menerapkan transisi administratif ke model (belum disimpan).
// Aturan: active menghapus trial_expires_at (invariant: active ⇒ expiry NULL).
func ApplyStatusChange(sch *model.SchoolModel, newStatus string, now time.Time) error {
	normalized, err := NormalizeStatus(newStatus)
	if err != nil {
		return err
	}
	sch.SchoolStatus = normalized
	if normalized == model.SchoolStatusActive {
		sch.SchoolTrialExpiresAt = nil
	}
	sch.SchoolUpdatedAt = now
	return nil
}

// NextTrialExpiry menghitung expiry baru untuk perpanjangan N hari.
// Basis perhitungan = yang paling akhir antara (now, expiry sekarang):
// trial yang sudah lewat diperpanjang dari sekarang, bukan dari tanggal basi,
// supaya perpanjangan tidak "termakan" masa kadaluarsa.
func NextTrialExpiry(current *time.Time, days int, now time.Time) (time.Time, error) {
	if days < TrialExtendMinDays || days > TrialExtendMaxDays {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("days harus %d–%d", TrialExtendMinDays, TrialExtendMaxDays))
	}
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.Add(time.Duration(days) * 24 * time.Hour), nil
}

// ExtendTrial memperpanjang masa trial pada model (belum disimpan).
// Guard: sekolah yang sudah active tidak bisa diperpanjang — perpanjangan
// tidak bermakna setelah billing aktif.
func ExtendTrial(sch *model.SchoolModel, days int, now time.Time) error {
	if sch.SchoolStatus == model.SchoolStatusActive {
		return fiber.NewError(fiber.StatusConflict, "Sekolah sudah active; trial tidak bisa diperpanjang")
	}
	next, err := NextTrialExpiry(sch.SchoolTrialExpiresAt, days, now)
	if err != nil {
		return err
	}
	sch.SchoolTrialExpiresAt = &next
	sch.SchoolStatus = model.SchoolStatusTrial
	sch.SchoolUpdatedAt = now
	return nil
}

// ComputeTrialState menghitung potret lifecycle pada waktu `now`.
// Dipakai endpoint trial-status (banner) dan gate middleware; keduanya tidak
// bergantung pada sweeper yang mem-flip kolom status.
func ComputeTrialState(sch *model.SchoolModel, now time.Time) TrialState {
	st := TrialState{
		Status:    sch.SchoolStatus,
		ExpiresAt: sch.SchoolTrialExpiresAt,
	}

	switch sch.SchoolStatus {
	case model.SchoolStatusSuspended:
		st.Blocked = true
		return st

	case model.SchoolStatusActive:
		return st

	case model.SchoolStatusTrial:
		if sch.SchoolTrialExpiresAt == nil {
			// trial tanpa batas waktu: tidak diblok, tanpa countdown
			st.Severity = TrialSeverityNormal
			return st
		}
		remaining := sch.SchoolTrialExpiresAt.Sub(now)
		if remaining <= 0 {
			st.Severity = TrialSeverityExpired
			st.Blocked = true
			return st
		}

		switch {
		case remaining <= trialCriticalWindow:
			st.Severity = TrialSeverityCritical
		case remaining <= trialWarningWindow:
			st.Severity = TrialSeverityWarning
		default:
			st.Severity = TrialSeverityNormal
		}

		secs := int(remaining / time.Second)
		st.DaysLeft = secs / 86400
		st.HoursLeft = (secs % 86400) / 3600
		st.MinutesLeft = (secs % 3600) / 60
		st.SecondsLeft = secs % 60
		return st
	}

	// status tidak dikenal di DB: perlakukan seperti suspended (fail closed)
	st.Blocked = true
	return st
}
