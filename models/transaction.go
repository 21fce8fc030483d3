package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 金额在持久化记录与 API 中都以 JSON 数字输出
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind 交易类型
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

var (
	ErrInvalidKind      = errors.New("invalid kind")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category id")
	ErrInvalidDate      = errors.New("invalid date")
)

// Valid 是否为 income / expense
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind 解析交易类型
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Transaction 收入/支出记录，两者结构相同，由所在列表区分类型
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionInput 新建交易时由调用方提供的字段
type TransactionInput struct {
	Amount      decimal.Decimal
	Date        Date
	Description string
	CategoryID  string
	Notes       string
}

// Validate 校验输入
func (in TransactionInput) Validate() error {
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if in.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// NewTransaction 用给定的 id 与创建时间生成记录
func NewTransaction(id string, createdAt time.Time, in TransactionInput) Transaction {
	return Transaction{
		ID:          id,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: strings.TrimSpace(in.Description),
		CategoryID:  strings.TrimSpace(in.CategoryID),
		Notes:       in.Notes,
		CreatedAt:   createdAt,
	}
}
