package migrations

import (
	"github.com/NeuralTrust/ClickGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260301_create_blocked_entries",
		Name: "Create blocked_entries table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS blocked_entries (
					id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					account_ref     TEXT NOT NULL,
					target          TEXT NOT NULL,
					scope           TEXT NOT NULL,
					reason          TEXT NOT NULL,
					reasons         TEXT[] NOT NULL DEFAULT '{}',
					active          BOOLEAN NOT NULL DEFAULT TRUE,
					hits            BIGINT NOT NULL DEFAULT 1,
					last_seen_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					unblocked_at    TIMESTAMPTZ,
					expires_at      TIMESTAMPTZ,
					operation_id    TEXT,
					already_blocked BOOLEAN NOT NULL DEFAULT FALSE,
					created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT idx_blocked_entries_key UNIQUE (account_ref, target, scope)
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_blocked_entries_active
				ON blocked_entries (account_ref, last_seen_at DESC)
				WHERE active;
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_blocked_entries_expires_at
				ON blocked_entries (expires_at)
				WHERE active AND expires_at IS NOT NULL;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS blocked_entries;`).Error
		},
	})
}
