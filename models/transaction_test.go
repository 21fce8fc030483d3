package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInput_Validate(t *testing.T) {
	good := TransactionInput{
		Amount:      decimal.NewFromInt(10),
		Date:        NewDate(2024, time.January, 2),
		Description: "Feira",
		CategoryID:  "4",
	}
	require.NoError(t, good.Validate())

	cases := []struct {
		name string
		mut  func(*TransactionInput)
		want error
	}{
		{"zero amount", func(in *TransactionInput) { in.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(in *TransactionInput) { in.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"zero date", func(in *TransactionInput) { in.Date = Date{} }, ErrInvalidDate},
		{"blank description", func(in *TransactionInput) { in.Description = "  " }, ErrEmptyDescription},
		{"blank category", func(in *TransactionInput) { in.CategoryID = "" }, ErrEmptyCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := good
			tc.mut(&in)
			assert.ErrorIs(t, in.Validate(), tc.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Income ")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, k)

	_, err = ParseKind("transfer")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestCategoryInput_Validate(t *testing.T) {
	assert.NoError(t, CategoryInput{Name: "Gás", Type: KindExpense, Color: "#fff"}.Validate())
	assert.ErrorIs(t, CategoryInput{Name: "", Type: KindExpense, Color: "#fff"}.Validate(), ErrEmptyName)
	assert.ErrorIs(t, CategoryInput{Name: "Gás", Type: "other", Color: "#fff"}.Validate(), ErrInvalidKind)
	assert.ErrorIs(t, CategoryInput{Name: "Gás", Type: KindIncome}.Validate(), ErrEmptyColor)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 31, d.Day())

	d, err = ParseDate("2024-03-05T23:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.February, 1)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-01"`, string(data))

	var back Date
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, back.Equal(d))

	var empty Date
	require.NoError(t, empty.UnmarshalJSON([]byte("null")))
	assert.True(t, empty.IsZero())
}
