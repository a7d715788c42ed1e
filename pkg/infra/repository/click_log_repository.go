package repository

import (
	"context"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"gorm.io/gorm"
)

const clickLogBatchSize = 200

type ClickLogRepository struct {
	db *gorm.DB
}

func NewClickLogRepository(db *gorm.DB) clicklog.Repository {
	return &ClickLogRepository{
		db: db,
	}
}

func (r *ClickLogRepository) CreateBatch(ctx context.Context, entries []*clicklog.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, clickLogBatchSize).Error
}

func (r *ClickLogRepository) ListRecent(ctx context.Context, accountRef string, limit int) ([]*clicklog.Entry, error) {
	var entries []*clicklog.Entry
	q := r.db.WithContext(ctx)
	if accountRef != "" {
		q = q.Where("account_ref = ?", accountRef)
	}
	if err := q.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
