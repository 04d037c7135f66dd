package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRegistrationCode(t *testing.T) {
	assert.Equal(t, "2024001", FormatRegistrationCode(2024, 1))
	assert.Equal(t, "2024042", FormatRegistrationCode(2024, 42))
	assert.Equal(t, "2024999", FormatRegistrationCode(2024, 999))
	assert.Equal(t, "2031007", FormatRegistrationCode(2031, 7))
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name string
		code string
		year int
		seq  int
		ok   bool
	}{
		{name: "kode valid", code: "2024001", year: 2024, seq: 1, ok: true},
		{name: "urutan max", code: "2024999", year: 2024, seq: 999, ok: true},
		{name: "tahun beda", code: "2023055", year: 2024, ok: false},
		{name: "suffix bukan angka", code: "2024ABC", year: 2024, ok: false},
		{name: "suffix kependekan", code: "202401", year: 2024, ok: false},
		{name: "suffix kepanjangan", code: "20241000", year: 2024, ok: false},
		{name: "kosong", code: "", year: 2024, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq, ok := ParseSequence(tc.code, tc.year)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.seq, seq)
			}
		})
	}
}

func TestNextSequence(t *testing.T) {
	t.Run("belum ada kode: mulai dari 1", func(t *testing.T) {
		assert.Equal(t, 1, NextSequence("", 2024))
	})

	t.Run("lanjut dari max yang ada", func(t *testing.T) {
		assert.Equal(t, 13, NextSequence("2024012", 2024))
		assert.Equal(t, 2, NextSequence("2024001", 2024))
	})

	t.Run("suffix rusak dianggap belum ada", func(t *testing.T) {
		assert.Equal(t, 1, NextSequence("2024xyz", 2024))
		assert.Equal(t, 1, NextSequence("LEGACY-77", 2024))
	})

	t.Run("tahun lain tidak memengaruhi urutan", func(t *testing.T) {
		// max milik 2023 → 2024 tetap mulai dari 1
		assert.Equal(t, 1, NextSequence("2023120", 2024))
	})

	t.Run("habis di 999", func(t *testing.T) {
		assert.Greater(t, NextSequence("2024999", 2024), registrationSeqMax)
	})
}

func TestValidYear(t *testing.T) {
	assert.True(t, ValidYear(2024))
	assert.True(t, ValidYear(2000))
	assert.True(t, ValidYear(9999))
	assert.False(t, ValidYear(1999))
	assert.False(t, ValidYear(0))
	assert.False(t, ValidYear(-5))
}

func TestDefaultRegistrationYear(t *testing.T) {
	now := time.Date(2024, 8, 29, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 2024, DefaultRegistrationYear(now))
}
