package models

import "time"

// SnapshotRecord MySQL 存储下保存快照的键值行
type SnapshotRecord struct {
	Key       string    `gorm:"column:snapshot_key;primaryKey;size:64"`
	Data      string    `gorm:"column:data;type:longtext;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}
