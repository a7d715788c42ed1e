package repository

import (
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestBlockedEntryRepository_UpsertStatement(t *testing.T) {
	db := dryRunDB(t)
	entry := &blocked.Entry{
		AccountRef: "123-456-7890",
		Target:     "203.0.113.7",
		Scope:      decision.ScopeExact,
		Reason:     string(decision.ReasonHighFrequencyNoISP),
		Reasons:    pq.StringArray{string(decision.ReasonHighFrequencyNoISP)},
		Active:     true,
		Hits:       1,
		LastSeenAt: time.Now(),
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(upsertClause()).Create(entry)
	})

	assert.Contains(t, sql, `INSERT INTO "blocked_entries"`)
	assert.Contains(t, sql, `ON CONFLICT ("account_ref","target","scope") DO UPDATE SET`)
	assert.Contains(t, sql, `"hits"=blocked_entries.hits + 1`)
	assert.Contains(t, sql, `array_append(blocked_entries.reasons, EXCLUDED.reason)`)
	assert.Contains(t, sql, `"unblocked_at"=NULL`)
}

func TestBlockedEntryRepository_ListExpiredStatement(t *testing.T) {
	db := dryRunDB(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var entries []*blocked.Entry
		return tx.Where("active AND expires_at IS NOT NULL AND expires_at <= ?", at).
			Order("expires_at").Limit(10).Find(&entries)
	})

	assert.Contains(t, sql, `FROM "blocked_entries"`)
	assert.Contains(t, sql, "expires_at <= '2026-03-01 12:00:00'")
	assert.Contains(t, sql, "LIMIT 10")
}
