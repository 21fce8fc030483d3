package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cantina/models"

	_ "modernc.org/sqlite"
)

const (
	selectSnapshotSQL = `SELECT data FROM snapshots WHERE snapshot_key = ?`
	upsertSnapshotSQL = `INSERT INTO snapshots (snapshot_key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(snapshot_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
)

// SQLiteAdapter 快照保存在 SQLite 的 snapshots 表中
type SQLiteAdapter struct {
	db  *sql.DB
	key string
}

// NewSQLiteAdapter 打开数据库文件并执行迁移
func NewSQLiteAdapter(ctx context.Context, dbPath, key string) (*SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// 单写者，避免 database is locked
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteAdapter{db: db, key: key}, nil
}

func (a *SQLiteAdapter) Load(ctx context.Context) (models.Snapshot, error) {
	var data string
	err := a.db.QueryRowContext(ctx, selectSnapshotSQL, a.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("query snapshot: %w", err)
	}
	return Decode([]byte(data))
}

func (a *SQLiteAdapter) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if _, err := a.db.ExecContext(ctx, upsertSnapshotSQL, a.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (a *SQLiteAdapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
