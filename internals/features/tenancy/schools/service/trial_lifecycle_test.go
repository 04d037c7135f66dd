package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/tenancy/schools/model"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestNormalizeStatus(t *testing.T) {
	for _, ok := range []string{"trial", "active", "suspended", " Active ", "TRIAL"} {
		got, err := NormalizeStatus(ok)
		require.NoError(t, err, ok)
		assert.Contains(t, []string{"trial", "active", "suspended"}, got)
	}

	for _, bad := range []string{"", "deleted", "paused", "aktif"} {
		_, err := NormalizeStatus(bad)
		require.Error(t, err, bad)
		fe, isFiber := err.(*fiber.Error)
		require.True(t, isFiber)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}

func TestApplyStatusChange_ActiveClearsExpiry(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	sch := &model.SchoolModel{
		SchoolStatus:         model.SchoolStatusTrial,
		SchoolTrialExpiresAt: ptrTime(now.Add(48 * time.Hour)),
	}

	require.NoError(t, ApplyStatusChange(sch, "active", now))
	assert.Equal(t, model.SchoolStatusActive, sch.SchoolStatus)
	assert.Nil(t, sch.SchoolTrialExpiresAt, "active harus menghapus trial_expires_at")
}

func TestApplyStatusChange_SuspendKeepsExpiry(t *testing.T) {
	now := time.Now()
	exp := ptrTime(now.Add(24 * time.Hour))
	sch := &model.SchoolModel{SchoolStatus: model.SchoolStatusTrial, SchoolTrialExpiresAt: exp}

	require.NoError(t, ApplyStatusChange(sch, "suspended", now))
	assert.Equal(t, model.SchoolStatusSuspended, sch.SchoolStatus)
	assert.Equal(t, exp, sch.SchoolTrialExpiresAt)
}

func TestNextTrialExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current *time.Time
		days    int
		want    time.Time
		wantErr bool
	}{
		{
			name:    "tanpa expiry berjalan: basis = now",
			current: nil,
			days:    7,
			want:    now.Add(7 * 24 * time.Hour),
		},
		{
			name:    "expiry masih di depan: basis = expiry",
			current: ptrTime(now.Add(72 * time.Hour)),
			days:    30,
			want:    now.Add(72 * time.Hour).Add(30 * 24 * time.Hour),
		},
		{
			name:    "expiry sudah lewat: basis = now, bukan tanggal basi",
			current: ptrTime(now.Add(-10 * 24 * time.Hour)),
			days:    14,
			want:    now.Add(14 * 24 * time.Hour),
		},
		{name: "days 0 ditolak", days: 0, wantErr: true},
		{name: "days negatif ditolak", days: -3, wantErr: true},
		{name: "days 366 ditolak", days: 366, wantErr: true},
		{name: "days 1 diterima", days: 1, want: now.Add(24 * time.Hour)},
		{name: "days 365 diterima", days: 365, want: now.Add(365 * 24 * time.Hour)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextTrialExpiry(tc.current, tc.days, now)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestExtendTrial_RejectedWhenActive(t *testing.T) {
	now := time.Now()
	sch := &model.SchoolModel{SchoolStatus: model.SchoolStatusActive}

	err := ExtendTrial(sch, 30, now)
	require.Error(t, err)
	fe, isFiber := err.(*fiber.Error)
	require.True(t, isFiber)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	// tidak ada field yang berubah
	assert.Equal(t, model.SchoolStatusActive, sch.SchoolStatus)
	assert.Nil(t, sch.SchoolTrialExpiresAt)
}

func TestExtendTrial_FromSuspendedReturnsToTrial(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sch := &model.SchoolModel{
		SchoolStatus:         model.SchoolStatusSuspended,
		SchoolTrialExpiresAt: ptrTime(now.Add(-48 * time.Hour)),
	}

	require.NoError(t, ExtendTrial(sch, 7, now))
	assert.Equal(t, model.SchoolStatusTrial, sch.SchoolStatus)
	require.NotNil(t, sch.SchoolTrialExpiresAt)
	assert.True(t, sch.SchoolTrialExpiresAt.Equal(now.Add(7*24*time.Hour)))
}

func TestComputeTrialState(t *testing.T) {
	now := time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("suspended selalu blocked", func(t *testing.T) {
		st := ComputeTrialState(&model.SchoolModel{SchoolStatus: model.SchoolStatusSuspended}, now)
		assert.True(t, st.Blocked)
		assert.Empty(t, st.Severity)
	})

	t.Run("active tidak blocked, tanpa countdown", func(t *testing.T) {
		st := ComputeTrialState(&model.SchoolModel{SchoolStatus: model.SchoolStatusActive}, now)
		assert.False(t, st.Blocked)
		assert.Zero(t, st.DaysLeft)
	})

	t.Run("trial 3 hari lagi: warning + countdown D/H/M/S", func(t *testing.T) {
		exp := now.Add(3*24*time.Hour - time.Second) // sedikit di bawah 72 jam
		st := ComputeTrialState(&model.SchoolModel{
			SchoolStatus:         model.SchoolStatusTrial,
			SchoolTrialExpiresAt: &exp,
		}, now)
		assert.False(t, st.Blocked)
		assert.Equal(t, TrialSeverityWarning, st.Severity)
		assert.Equal(t, 2, st.DaysLeft)
		assert.Equal(t, 23, st.HoursLeft)
		assert.Equal(t, 59, st.MinutesLeft)
		assert.Equal(t, 59, st.SecondsLeft)
	})

	t.Run("trial 10 hari lagi: normal", func(t *testing.T) {
		exp := now.Add(10 * 24 * time.Hour)
		st := ComputeTrialState(&model.SchoolModel{
			SchoolStatus:         model.SchoolStatusTrial,
			SchoolTrialExpiresAt: &exp,
		}, now)
		assert.Equal(t, TrialSeverityNormal, st.Severity)
		assert.Equal(t, 10, st.DaysLeft)
	})

	t.Run("kurang dari 12 jam: critical", func(t *testing.T) {
		exp := now.Add(11 * time.Hour)
		st := ComputeTrialState(&model.SchoolModel{
			SchoolStatus:         model.SchoolStatusTrial,
			SchoolTrialExpiresAt: &exp,
		}, now)
		assert.Equal(t, TrialSeverityCritical, st.Severity)
		assert.False(t, st.Blocked)
	})

	t.Run("sudah lewat deadline: expired + blocked walau status masih trial", func(t *testing.T) {
		exp := now.Add(-time.Minute)
		st := ComputeTrialState(&model.SchoolModel{
			SchoolStatus:         model.SchoolStatusTrial,
			SchoolTrialExpiresAt: &exp,
		}, now)
		assert.Equal(t, TrialSeverityExpired, st.Severity)
		assert.True(t, st.Blocked)
		assert.Zero(t, st.DaysLeft)
	})

	t.Run("trial tanpa expiry: normal, tidak blocked", func(t *testing.T) {
		st := ComputeTrialState(&model.SchoolModel{SchoolStatus: model.SchoolStatusTrial}, now)
		assert.Equal(t, TrialSeverityNormal, st.Severity)
		assert.False(t, st.Blocked)
	})

	t.Run("status tidak dikenal: fail closed", func(t *testing.T) {
		st := ComputeTrialState(&model.SchoolModel{SchoolStatus: "garbage"}, now)
		assert.True(t, st.Blocked)
	})
}
