package migrations

import (
	"github.com/NeuralTrust/ClickGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260302_create_click_logs",
		Name: "Create click_logs table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS click_logs (
					id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					account_ref       TEXT,
					session_id        TEXT,
					ip                TEXT NOT NULL,
					fingerprint       TEXT,
					fingerprint_count BIGINT NOT NULL DEFAULT 0,
					is_ad_click       BOOLEAN NOT NULL DEFAULT FALSE,
					decision          TEXT NOT NULL,
					reason            TEXT NOT NULL,
					scope             TEXT,
					target            TEXT,
					message           TEXT,
					honeypot          BOOLEAN NOT NULL DEFAULT FALSE,
					pow_passed        BOOLEAN NOT NULL DEFAULT FALSE,
					url               TEXT,
					query             TEXT,
					gclid             TEXT,
					gclsrc            TEXT,
					utm_source        TEXT,
					utm_medium        TEXT,
					utm_campaign      TEXT,
					utm_term          TEXT,
					utm_content       TEXT,
					referrer          TEXT,
					domain            TEXT,
					reputation        JSONB,
					created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			// Recent-clicks listing per account
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_click_logs_account_created
				ON click_logs (account_ref, created_at DESC);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_click_logs_fingerprint
				ON click_logs (fingerprint);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS click_logs;`).Error
		},
	})
}
