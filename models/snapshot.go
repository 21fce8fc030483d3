package models

import "slices"

// Snapshot 完整账本状态，持久化的最小单位。
// 所有 With* / Without* 方法都返回新的快照，不修改接收者的底层数组。
type Snapshot struct {
	Income     []Transaction `json:"income"`
	Expenses   []Transaction `json:"expenses"`
	Categories []Category    `json:"categories"`
}

// DefaultSnapshot 空交易列表 + 默认类别
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Income:     []Transaction{},
		Expenses:   []Transaction{},
		Categories: DefaultCategories(),
	}
}

// Clone 深拷贝三个列表
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Income:     cloneList(s.Income),
		Expenses:   cloneList(s.Expenses),
		Categories: cloneList(s.Categories),
	}
}

// Transactions 返回对应类型的交易列表
func (s Snapshot) Transactions(kind Kind) []Transaction {
	switch kind {
	case KindIncome:
		return s.Income
	case KindExpense:
		return s.Expenses
	}
	return nil
}

// CategoryByID 按 id 查找类别，类别可能已被删除
func (s Snapshot) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoriesOf 返回指定类型的类别
func (s Snapshot) CategoriesOf(kind Kind) []Category {
	out := make([]Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		if c.Type == kind {
			out = append(out, c)
		}
	}
	return out
}

// WithTransaction 追加交易
func (s Snapshot) WithTransaction(kind Kind, tx Transaction) Snapshot {
	next := s
	switch kind {
	case KindIncome:
		next.Income = appendCopy(s.Income, tx)
	case KindExpense:
		next.Expenses = appendCopy(s.Expenses, tx)
	}
	return next
}

// WithoutTransaction 删除指定 id 的交易，不存在时返回 false 且快照不变
func (s Snapshot) WithoutTransaction(kind Kind, id string) (Snapshot, bool) {
	next := s
	switch kind {
	case KindIncome:
		list, ok := removeByID(s.Income, id, func(t Transaction) string { return t.ID })
		if !ok {
			return s, false
		}
		next.Income = list
	case KindExpense:
		list, ok := removeByID(s.Expenses, id, func(t Transaction) string { return t.ID })
		if !ok {
			return s, false
		}
		next.Expenses = list
	default:
		return s, false
	}
	return next, true
}

// WithCategory 追加类别
func (s Snapshot) WithCategory(c Category) Snapshot {
	next := s
	next.Categories = appendCopy(s.Categories, c)
	return next
}

// WithUpdatedCategory 替换 id 相同的类别，没有匹配时返回 false
func (s Snapshot) WithUpdatedCategory(c Category) (Snapshot, bool) {
	idx := slices.IndexFunc(s.Categories, func(existing Category) bool { return existing.ID == c.ID })
	if idx < 0 {
		return s, false
	}
	next := s
	next.Categories = cloneList(s.Categories)
	next.Categories[idx] = c
	return next, true
}

// WithoutCategory 删除类别；引用它的交易保持不变
func (s Snapshot) WithoutCategory(id string) (Snapshot, bool) {
	list, ok := removeByID(s.Categories, id, func(c Category) string { return c.ID })
	if !ok {
		return s, false
	}
	next := s
	next.Categories = list
	return next, true
}

func cloneList[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func appendCopy[T any](in []T, item T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, item)
}

func removeByID[T any](in []T, id string, idOf func(T) string) ([]T, bool) {
	idx := slices.IndexFunc(in, func(item T) bool { return idOf(item) == id })
	if idx < 0 {
		return in, false
	}
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:idx]...)
	return append(out, in[idx+1:]...), true
}
