package report

import (
	"testing"
	"time"

	"cantina/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var may2024 = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func tx(id, categoryID, amount string, date models.Date) models.Transaction {
	return models.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Description: "t" + id,
		CategoryID:  categoryID,
	}
}

func day(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

func TestDashboardStats_CurrentMonthTotals(t *testing.T) {
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, tx("a", "1", "100", day(2024, time.May, 10))).
		WithTransaction(models.KindExpense, tx("b", "4", "40", day(2024, time.May, 12)))

	stats := CalculateDashboardStats(snap, may2024)

	assert.True(t, decimal.NewFromInt(100).Equal(stats.CurrentMonthIncome))
	assert.True(t, decimal.NewFromInt(40).Equal(stats.CurrentMonthExpenses))
	assert.True(t, decimal.NewFromInt(60).Equal(stats.CurrentMonthProfit))
	assert.True(t, stats.PreviousMonthProfit.IsZero())
	assert.Equal(t, 100.0, stats.ProfitTrend)
	require.Len(t, stats.TopIncomeCategories, 1)
	assert.Equal(t, "Vendas diárias", stats.TopIncomeCategories[0].CategoryName)
	require.Len(t, stats.TopExpenseCategories, 1)
	assert.Equal(t, "Ingredientes", stats.TopExpenseCategories[0].CategoryName)
}

func TestDashboardStats_IgnoresOtherMonths(t *testing.T) {
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, tx("a", "1", "100", day(2024, time.May, 1))).
		WithTransaction(models.KindIncome, tx("b", "1", "999", day(2023, time.May, 1))).
		WithTransaction(models.KindIncome, tx("c", "1", "70", day(2024, time.April, 30)))

	stats := CalculateDashboardStats(snap, may2024)
	assert.True(t, decimal.NewFromInt(100).Equal(stats.CurrentMonthIncome))
	assert.True(t, decimal.NewFromInt(70).Equal(stats.PreviousMonthProfit))
}

func TestDashboardStats_JanuaryComparesWithDecember(t *testing.T) {
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, tx("a", "1", "30", day(2024, time.December, 20))).
		WithTransaction(models.KindIncome, tx("b", "1", "60", day(2025, time.January, 5)))

	stats := CalculateDashboardStats(snap, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Period{Year: 2025, Month: time.January}, stats.Period)
	assert.True(t, decimal.NewFromInt(30).Equal(stats.PreviousMonthProfit))
	assert.Equal(t, 100.0, stats.ProfitTrend)
}

func TestDashboardStats_EmptySnapshot(t *testing.T) {
	stats := CalculateDashboardStats(models.DefaultSnapshot(), may2024)
	assert.True(t, stats.CurrentMonthProfit.IsZero())
	assert.Equal(t, 0.0, stats.ProfitTrend)
	assert.NotNil(t, stats.TopIncomeCategories)
	assert.Empty(t, stats.TopIncomeCategories)
	assert.Empty(t, stats.TopExpenseCategories)
}

func TestDashboardStats_TopCategoriesCappedAtThree(t *testing.T) {
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindExpense, tx("a", "4", "10", day(2024, time.May, 1))).
		WithTransaction(models.KindExpense, tx("b", "5", "40", day(2024, time.May, 2))).
		WithTransaction(models.KindExpense, tx("c", "6", "30", day(2024, time.May, 3))).
		WithTransaction(models.KindExpense, tx("d", "7", "20", day(2024, time.May, 4))).
		WithTransaction(models.KindExpense, tx("e", "4", "5", day(2024, time.May, 5)))

	top := CalculateDashboardStats(snap, may2024).TopExpenseCategories
	require.Len(t, top, 3)
	assert.Equal(t, "5", top[0].CategoryID)
	assert.Equal(t, "6", top[1].CategoryID)
	assert.Equal(t, "7", top[2].CategoryID)
}

func TestByCategory_TiesKeepFirstEncounterOrder(t *testing.T) {
	list := []models.Transaction{
		tx("a", "6", "20", day(2024, time.May, 1)),
		tx("b", "4", "20", day(2024, time.May, 2)),
		tx("c", "5", "20", day(2024, time.May, 3)),
	}
	groups := ByCategory(models.DefaultSnapshot(), list)
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"6", "4", "5"}, []string{groups[0].CategoryID, groups[1].CategoryID, groups[2].CategoryID})
}

func TestByCategory_DanglingCategory(t *testing.T) {
	snap, ok := models.DefaultSnapshot().
		WithTransaction(models.KindExpense, tx("a", "4", "15", day(2024, time.May, 1))).
		WithoutCategory("4")
	require.True(t, ok)

	groups := ByCategory(snap, snap.Expenses)
	require.Len(t, groups, 1)
	assert.Equal(t, UnknownCategory, groups[0].CategoryName)
	assert.Equal(t, "4", groups[0].CategoryID)
}

func TestProfitTrend(t *testing.T) {
	cases := []struct {
		name      string
		cur, prev string
		want      float64
	}{
		{"previous zero, positive current", "50", "0", 100},
		{"previous zero, zero current", "0", "0", 0},
		{"previous zero, negative current", "-10", "0", 0},
		{"growth", "150", "100", 50},
		{"decline", "50", "100", -50},
		{"negative previous improving", "-10", "-20", 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProfitTrend(decimal.RequireFromString(tc.cur), decimal.RequireFromString(tc.prev))
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestBuildPeriodReport(t *testing.T) {
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, tx("a", "1", "75", day(2024, time.May, 1))).
		WithTransaction(models.KindIncome, tx("b", "2", "25", day(2024, time.May, 2))).
		WithTransaction(models.KindIncome, tx("x", "2", "500", day(2024, time.June, 2))).
		WithTransaction(models.KindExpense, tx("c", "4", "10", day(2024, time.May, 3))).
		WithTransaction(models.KindExpense, tx("d", "5", "20", day(2024, time.May, 4))).
		WithTransaction(models.KindExpense, tx("e", "6", "30", day(2024, time.May, 5))).
		WithTransaction(models.KindExpense, tx("f", "7", "40", day(2024, time.May, 6)))

	r := BuildPeriodReport(snap, Period{Year: 2024, Month: time.May})

	assert.Equal(t, "maio 2024", r.Label)
	assert.True(t, decimal.NewFromInt(100).Equal(r.TotalIncome))
	assert.True(t, decimal.NewFromInt(100).Equal(r.TotalExpenses))
	assert.True(t, r.Profit.IsZero())
	assert.Len(t, r.Income, 2)
	assert.Len(t, r.Expenses, 4)

	require.Len(t, r.IncomeByCategory, 2)
	assert.InDelta(t, 75.0, r.IncomeByCategory[0].Percentage, 1e-9)
	assert.InDelta(t, 25.0, r.IncomeByCategory[1].Percentage, 1e-9)

	// 报表不截断类别
	require.Len(t, r.ExpensesByCategory, 4)
	sum := 0.0
	for _, s := range r.ExpensesByCategory {
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.Equal(t, "7", r.ExpensesByCategory[0].CategoryID)
}

func TestBuildPeriodReport_EmptyPeriod(t *testing.T) {
	r := BuildPeriodReport(models.DefaultSnapshot(), Period{Year: 2020, Month: time.March})
	assert.True(t, r.TotalIncome.IsZero())
	assert.Empty(t, r.IncomeByCategory)
	assert.NotNil(t, r.Income)
	assert.NotNil(t, r.Expenses)
}

func TestAvailableYears(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []int{2026}, AvailableYears(models.DefaultSnapshot(), now))

	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, tx("a", "1", "1", day(2022, time.May, 1))).
		WithTransaction(models.KindExpense, tx("b", "4", "1", day(2024, time.May, 1))).
		WithTransaction(models.KindIncome, tx("c", "1", "1", day(2022, time.June, 1)))
	assert.Equal(t, []int{2024, 2022}, AvailableYears(snap, now))
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, Period{Year: 2023, Month: time.December}, Period{Year: 2024, Month: time.January}.Previous())
	assert.Equal(t, Period{Year: 2024, Month: time.April}, Period{Year: 2024, Month: time.May}.Previous())
	assert.ErrorIs(t, Period{Year: 2024, Month: 13}.Validate(), ErrInvalidPeriod)
	assert.ErrorIs(t, Period{Year: 2024, Month: 0}.Validate(), ErrInvalidPeriod)
	assert.NoError(t, Period{Year: 2024, Month: time.December}.Validate())
	assert.True(t, Period{Year: 2024, Month: time.May}.Contains(day(2024, time.May, 31)))
	assert.False(t, Period{Year: 2024, Month: time.May}.Contains(day(2023, time.May, 31)))
}
