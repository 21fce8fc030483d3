// Package storage 把整个账本快照作为一条记录读写。
// 记录以固定键保存，不同驱动只决定这条记录放在哪里。
package storage

import (
	"context"
	"errors"
	"fmt"

	"cantina/config"
	"cantina/database"
	"cantina/models"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound 键下还没有任何记录
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorrupt 记录存在但无法解析
	ErrCorrupt = errors.New("snapshot record is corrupt")
)

// DefaultKey 快照记录的默认键
const DefaultKey = "cantinaFinanceData"

// Adapter 快照存储接口
type Adapter interface {
	// Load 读取快照，记录不存在时返回 ErrNotFound
	Load(ctx context.Context) (models.Snapshot, error)
	// Save 整体覆盖写入快照
	Save(ctx context.Context, snap models.Snapshot) error
}

// CleanupFunc 释放驱动持有的资源
type CleanupFunc func() error

func noCleanup() error { return nil }

// Open 按配置创建存储驱动
func Open(ctx context.Context, cfg config.StorageConfig, log logrus.FieldLogger) (Adapter, CleanupFunc, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	log = log.WithField("driver", cfg.Driver)

	switch cfg.Driver {
	case config.DriverFile, "":
		a, err := NewFileAdapter(cfg.Dir, key)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", a.Path()).Info("使用文件存储")
		return a, noCleanup, nil

	case config.DriverSQLite:
		a, err := NewSQLiteAdapter(ctx, cfg.SQLitePath, key)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("使用 SQLite 存储")
		return a, a.Close, nil

	case config.DriverMySQL:
		db, err := database.Open(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		log.WithFields(logrus.Fields{
			"host":   cfg.MySQL.Host,
			"dbname": cfg.MySQL.DBName,
		}).Info("使用 MySQL 存储")
		return NewGormAdapter(db, key), func() error { return database.Close(db) }, nil

	case config.DriverMemory:
		log.Warn("使用内存存储，进程退出后数据丢失")
		return NewMemoryAdapter(), noCleanup, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
}

// LoadOrDefault 启动时读取快照。
// 记录不存在、无法解析或读取失败都回退为默认快照，只记录日志不返回错误。
func LoadOrDefault(ctx context.Context, a Adapter, log logrus.FieldLogger) models.Snapshot {
	snap, err := a.Load(ctx)
	switch {
	case err == nil:
		log.WithFields(logrus.Fields{
			"income":     len(snap.Income),
			"expenses":   len(snap.Expenses),
			"categories": len(snap.Categories),
		}).Info("已加载账本快照")
		return snap
	case errors.Is(err, ErrNotFound):
		log.Info("没有已保存的快照，使用默认数据")
	case errors.Is(err, ErrCorrupt):
		log.WithError(err).Warn("快照无法解析，使用默认数据")
	default:
		log.WithError(err).Error("读取快照失败，使用默认数据")
	}
	return models.DefaultSnapshot()
}
