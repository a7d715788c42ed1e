package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const blockedEntity = "blocked_entry"

type blockedEntryRepository struct {
	db *gorm.DB
}

func NewBlockedEntryRepository(db *gorm.DB) blocked.Repository {
	return &blockedEntryRepository{
		db: db,
	}
}

// upsertClause reactivates a previously lifted entry and accumulates hits
// and reasons instead of inserting a duplicate row.
func upsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "account_ref"}, {Name: "target"}, {Name: "scope"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"active":          true,
			"hits":            gorm.Expr("blocked_entries.hits + 1"),
			"last_seen_at":    gorm.Expr("EXCLUDED.last_seen_at"),
			"reason":          gorm.Expr("EXCLUDED.reason"),
			"reasons":         gorm.Expr("array_append(blocked_entries.reasons, EXCLUDED.reason)"),
			"unblocked_at":    nil,
			"expires_at":      gorm.Expr("EXCLUDED.expires_at"),
			"operation_id":    gorm.Expr("COALESCE(NULLIF(EXCLUDED.operation_id, ''), blocked_entries.operation_id)"),
			"already_blocked": gorm.Expr("EXCLUDED.already_blocked"),
			"updated_at":      gorm.Expr("NOW()"),
		}),
	}
}

func (r *blockedEntryRepository) Upsert(ctx context.Context, entry *blocked.Entry) error {
	if err := r.db.WithContext(ctx).
		Clauses(upsertClause(), clause.Returning{}).
		Create(entry).Error; err != nil {
		return fmt.Errorf("failed to upsert blocked entry: %w", err)
	}
	return nil
}

func (r *blockedEntryRepository) Find(ctx context.Context, accountRef, target string, scope decision.Scope) (*blocked.Entry, error) {
	return r.first(ctx, r.db.WithContext(ctx).
		Where("account_ref = ? AND target = ? AND scope = ?", accountRef, target, scope), target)
}

func (r *blockedEntryRepository) FindActive(ctx context.Context, accountRef, target string, scope decision.Scope) (*blocked.Entry, error) {
	return r.first(ctx, r.db.WithContext(ctx).
		Where("account_ref = ? AND target = ? AND scope = ? AND active", accountRef, target, scope), target)
}

func (r *blockedEntryRepository) first(_ context.Context, q *gorm.DB, key string) (*blocked.Entry, error) {
	var entry blocked.Entry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(blockedEntity, key)
		}
		return nil, err
	}
	return &entry, nil
}

func (r *blockedEntryRepository) TouchHit(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&blocked.Entry{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"hits":         gorm.Expr("hits + 1"),
			"last_seen_at": seenAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(blockedEntity, id.String())
	}
	return nil
}

func (r *blockedEntryRepository) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&blocked.Entry{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"active":       false,
			"unblocked_at": at,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(blockedEntity, id.String())
	}
	return nil
}

func (r *blockedEntryRepository) ListActive(ctx context.Context, accountRef string, since time.Time, limit int) ([]*blocked.Entry, error) {
	var entries []*blocked.Entry
	q := r.db.WithContext(ctx).Where("active")
	if accountRef != "" {
		q = q.Where("account_ref = ?", accountRef)
	}
	if !since.IsZero() {
		q = q.Where("last_seen_at >= ?", since)
	}
	if err := q.Order("last_seen_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *blockedEntryRepository) ListExpired(ctx context.Context, at time.Time, limit int) ([]*blocked.Entry, error) {
	var entries []*blocked.Entry
	if err := r.db.WithContext(ctx).
		Where("active AND expires_at IS NOT NULL AND expires_at <= ?", at).
		Order("expires_at").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
