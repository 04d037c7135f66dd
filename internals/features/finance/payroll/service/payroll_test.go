package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePeriod(t *testing.T) {
	for _, ok := range []string{"2024-01", "2024-12", "2031-06"} {
		assert.NoError(t, ValidatePeriod(ok), ok)
	}
	for _, bad := range []string{"", "2024-13", "2024-00", "2024/01", "24-01", "2024-1"} {
		err := ValidatePeriod(bad)
		require.Error(t, err, bad)
		fe, isFiber := err.(*fiber.Error)
		require.True(t, isFiber)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08", CurrentPeriod(now))
}

func TestComputeNetPay(t *testing.T) {
	t.Run("gaji pokok + tunjangan - potongan", func(t *testing.T) {
		net, err := ComputeNetPay(5_000_000, 750_000, 250_000)
		require.NoError(t, err)
		assert.Equal(t, 5_500_000.0, net)
	})

	t.Run("pembulatan 2 desimal", func(t *testing.T) {
		net, err := ComputeNetPay(100.555, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 100.56, net)
	})

	t.Run("komponen negatif ditolak", func(t *testing.T) {
		_, err := ComputeNetPay(-1, 0, 0)
		require.Error(t, err)
	})

	t.Run("potongan melebihi gaji ditolak", func(t *testing.T) {
		_, err := ComputeNetPay(1_000_000, 0, 2_000_000)
		require.Error(t, err)
		fe, isFiber := err.(*fiber.Error)
		require.True(t, isFiber)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	})

	t.Run("potongan pas = nol", func(t *testing.T) {
		net, err := ComputeNetPay(1_000_000, 0, 1_000_000)
		require.NoError(t, err)
		assert.Zero(t, net)
	})
}
