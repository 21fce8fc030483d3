package models

import (
	"errors"
	"strings"
)

// DefaultColor 未指定颜色时使用的灰色
const DefaultColor = "#64748b"

var (
	ErrEmptyName  = errors.New("empty category name")
	ErrEmptyColor = errors.New("empty category color")
)

// Category 收入/支出类别，type 决定它可以归类哪种交易
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  Kind   `json:"type"`
	Color string `json:"color"` // 颜色代码，如 #10B981
}

// CategoryInput 新建类别的字段
type CategoryInput struct {
	Name  string
	Type  Kind
	Color string
}

// Validate 校验类别输入
func (in CategoryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if !in.Type.Valid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(in.Color) == "" {
		return ErrEmptyColor
	}
	return nil
}

// NewCategory 用给定 id 生成类别
func NewCategory(id string, in CategoryInput) Category {
	return Category{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Type:  in.Type,
		Color: strings.TrimSpace(in.Color),
	}
}

// DefaultCategories 没有持久化数据时使用的默认类别（3 个收入 + 4 个支出）
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Vendas diárias", Type: KindIncome, Color: "#10B981"},
		{ID: "2", Name: "Eventos especiais", Type: KindIncome, Color: "#3B82F6"},
		{ID: "3", Name: "Catering", Type: KindIncome, Color: "#F59E0B"},
		{ID: "4", Name: "Ingredientes", Type: KindExpense, Color: "#EF4444"},
		{ID: "5", Name: "Funcionários", Type: KindExpense, Color: "#8B5CF6"},
		{ID: "6", Name: "Utilidades", Type: KindExpense, Color: "#EC4899"},
		{ID: "7", Name: "Equipamentos", Type: KindExpense, Color: "#6366F1"},
	}
}
