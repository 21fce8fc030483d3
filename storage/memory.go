package storage

import (
	"context"
	"sync"

	"cantina/models"
)

// MemoryAdapter 进程内存储，保存编码后的字节，读写互不共享底层数组
type MemoryAdapter struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Load(ctx context.Context) (models.Snapshot, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.data == nil {
		return models.Snapshot{}, ErrNotFound
	}
	return Decode(a.data)
}

func (a *MemoryAdapter) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.data = data
	a.saves++
	a.mu.Unlock()
	return nil
}

// Saves 成功写入的次数
func (a *MemoryAdapter) Saves() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.saves
}
