package storage

import (
	"context"
	"errors"
	"fmt"

	"cantina/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAdapter 快照保存在 MySQL snapshots 表的一行中
type GormAdapter struct {
	db  *gorm.DB
	key string
}

func NewGormAdapter(db *gorm.DB, key string) *GormAdapter {
	return &GormAdapter{db: db, key: key}
}

func (a *GormAdapter) Load(ctx context.Context) (models.Snapshot, error) {
	var rec models.SnapshotRecord
	err := a.db.WithContext(ctx).Where("snapshot_key = ?", a.key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("query snapshot: %w", err)
	}
	return Decode([]byte(rec.Data))
}

// Save INSERT ... ON DUPLICATE KEY UPDATE
func (a *GormAdapter) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	rec := models.SnapshotRecord{Key: a.key, Data: string(data)}
	if err := a.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
