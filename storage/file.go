package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cantina/models"
)

// FileAdapter 快照保存为 <dir>/<key>.json
type FileAdapter struct {
	path string
}

// NewFileAdapter 创建文件存储，目录不存在时自动创建
func NewFileAdapter(dir, key string) (*FileAdapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileAdapter{path: filepath.Join(dir, key+".json")}, nil
}

// Path 快照文件路径
func (a *FileAdapter) Path() string {
	return a.path
}

func (a *FileAdapter) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}
	data, err := os.ReadFile(a.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}
	return Decode(data)
}

// Save 先写临时文件再 rename，读者不会看到写了一半的文件
func (a *FileAdapter) Save(ctx context.Context, snap models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), filepath.Base(a.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
