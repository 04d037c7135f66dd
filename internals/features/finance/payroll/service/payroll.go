// Perhitungan gaji bersih dan validasi periode payslip.
package service

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
)

var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidatePeriod menerima periode "YYYY-MM".
func ValidatePeriod(period string) error {
	if !periodRe.MatchString(period) {
		return fiber.NewError(fiber.StatusBadRequest, "Periode harus berformat YYYY-MM")
	}
	return nil
}

// CurrentPeriod: periode berjalan menurut kalender server.
func CurrentPeriod(now time.Time) string {
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}

// ComputeNetPay = gaji pokok + tunjangan - potongan, dibulatkan 2 desimal.
// Potongan tidak boleh membuat gaji bersih negatif.
func ComputeNetPay(baseSalary, allowance, deduction float64) (float64, error) {
	if baseSalary < 0 || allowance < 0 || deduction < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Komponen gaji tidak boleh negatif")
	}
	net := baseSalary + allowance - deduction
	if net < 0 {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "Potongan melebihi gaji")
	}
	return math.Round(net*100) / 100, nil
}
