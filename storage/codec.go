package storage

import (
	"fmt"

	"cantina/models"

	"github.com/goccy/go-json"
)

// Encode 序列化为 {"income":[...],"expenses":[...],"categories":[...]}
func Encode(snap models.Snapshot) ([]byte, error) {
	data, err := json.Marshal(normalize(snap))
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode 解析快照记录。
// 缺少交易列表时视为空，缺少 categories（或为 null）时使用默认类别。
func Decode(data []byte) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.Categories == nil {
		snap.Categories = models.DefaultCategories()
	}
	return normalize(snap), nil
}

func normalize(snap models.Snapshot) models.Snapshot {
	if snap.Income == nil {
		snap.Income = []models.Transaction{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []models.Transaction{}
	}
	if snap.Categories == nil {
		snap.Categories = []models.Category{}
	}
	return snap
}
