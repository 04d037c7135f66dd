package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// StartAuthCleanupScheduler membersihkan token_blacklist yang kadaluarsa
// dan refresh token yang sudah lewat masa berlakunya, tiap 24 jam.
func StartAuthCleanupScheduler(db *gorm.DB) {
	go func() {
		interval := time.Duration(configs.GetEnvInt("AUTH_CLEANUP_INTERVAL_HOURS", 24)) * time.Hour

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token kadaluarsa...")

			if err := helperAuth.PurgeExpiredBlacklist(context.Background(), db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal bersihkan token_blacklist: %v", err)
			}

			res := db.Where("refresh_token_expires_at < ?", time.Now().UTC()).
				Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", res.RowsAffected)
			}

			time.Sleep(interval)
		}
	}()
}
