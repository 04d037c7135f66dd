package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/tenancy/schools/model"
)

// StartTrialSweepScheduler mem-flip sekolah trial yang sudah lewat
// school_trial_expires_at menjadi suspended. Gate middleware tetap menghitung
// ulang per request; sweep ini hanya merapikan kolom status di DB supaya
// laporan owner tidak menampilkan trial basi.
func StartTrialSweepScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 30
		if val := os.Getenv("TRIAL_SWEEP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		for {
			res := db.Model(&model.SchoolModel{}).
				Where("school_status = ? AND school_trial_expires_at IS NOT NULL AND school_trial_expires_at < NOW()",
					model.SchoolStatusTrial).
				Update("school_status", model.SchoolStatusSuspended)
			if res.Error != nil {
				log.Printf("[TRIAL-SWEEP] gagal suspend trial kadaluarsa: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[TRIAL-SWEEP] %d sekolah trial kadaluarsa di-suspend", res.RowsAffected)
			}

			time.Sleep(time.Duration(intervalMin) * time.Minute)
		}
	}()
}
