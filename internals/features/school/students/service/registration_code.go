// Kode registrasi siswa: YYYY + urutan 3 digit (zero-padded), unik per
// sekolah per tahun. Penerbitan diserialisasi per sekolah+tahun lewat
// advisory lock Postgres supaya dua pendaftaran paralel tidak pernah
// membaca max yang sama.
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	registrationSeqDigits = 3
	registrationSeqMax    = 999
)

// ErrRegistrationCodesExhausted: urutan tahun tersebut sudah mencapai 999.
// Budget 3 digit tidak di-overflow ke 4 digit.
var ErrRegistrationCodesExhausted = errors.New("kode registrasi tahun ini sudah habis (maks 999)")

/* =========================================================
   Pure helpers — dipakai generator & tests
========================================================= */

// FormatRegistrationCode membentuk "YYYYSSS".
func FormatRegistrationCode(year, seq int) string {
	return fmt.Sprintf("%04d%0*d", year, registrationSeqDigits, seq)
}

// ParseSequence membaca urutan dari kode dengan prefix tahun yang sama.
// false bila kode bukan milik tahun itu atau suffix bukan 3 digit angka.
func ParseSequence(code string, year int) (int, bool) {
	prefix := fmt.Sprintf("%04d", year)
	if !strings.HasPrefix(code, prefix) {
		return 0, false
	}
	suffix := code[len(prefix):]
	if len(suffix) != registrationSeqDigits {
		return 0, false
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// NextSequence: urutan berikut dari kode max yang ada.
// Kode kosong / suffix rusak dianggap belum ada → mulai dari 1.
func NextSequence(maxCode string, year int) int {
	seq, ok := ParseSequence(maxCode, year)
	if !ok {
		return 1
	}
	return seq + 1
}

// ValidYear membatasi tahun target ke rentang 4 digit yang masuk akal.
func ValidYear(year int) bool {
	return year >= 2000 && year <= 9999
}

/* =========================================================
   DB issuance
========================================================= */

// GenerateRegistrationCode menerbitkan kode berikut untuk school+year.
// Harus dipanggil DI DALAM transaksi yang sama dengan INSERT siswanya:
// advisory lock di-hold sampai commit, menutup race read-then-write.
func GenerateRegistrationCode(tx *gorm.DB, schoolID uuid.UUID, year int) (string, error) {
	if !ValidYear(year) {
		return "", fmt.Errorf("tahun %d tidak valid", year)
	}

	// Serialisasi penerbitan per school+year (lepas otomatis saat tx selesai).
	lockKey := fmt.Sprintf("regcode:%s:%d", schoolID, year)
	if err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, lockKey).Error; err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("%04d", year)
	var maxCode string
	err := tx.Raw(`
		SELECT student_registration_code
		FROM students
		WHERE student_school_id = ?
		  AND student_registration_code LIKE ?
		  AND student_deleted_at IS NULL
		ORDER BY student_registration_code DESC
		LIMIT 1
	`, schoolID, prefix+"%").Scan(&maxCode).Error
	if err != nil {
		// lookup error dipropagasikan, tidak di-default-kan diam-diam
		return "", err
	}

	seq := NextSequence(maxCode, year)
	if seq > registrationSeqMax {
		return "", ErrRegistrationCodesExhausted
	}
	return FormatRegistrationCode(year, seq), nil
}

// DefaultRegistrationYear: tahun berjalan (kalender server).
func DefaultRegistrationYear(now time.Time) int {
	return now.Year()
}
