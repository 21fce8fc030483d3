// Package report 从账本快照计算仪表盘统计和月度报表。
// 所有函数都是纯函数：相同输入得到相同输出，参考日期由调用方传入。
package report

import (
	"slices"
	"time"

	"cantina/models"

	"github.com/shopspring/decimal"
)

// UnknownCategory 类别已被删除时显示的名称
const UnknownCategory = "Desconhecido"

// TopCategoriesLimit 仪表盘每种类型最多展示的类别数
const TopCategoriesLimit = 3

var hundred = decimal.NewFromInt(100)

// CategoryAmount 按类别汇总的金额
type CategoryAmount struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// CategoryShare 类别金额及其占周期总额的百分比
type CategoryShare struct {
	CategoryAmount
	Percentage float64 `json:"percentage"`
}

// DashboardStats 当月仪表盘数据
type DashboardStats struct {
	Period               Period           `json:"period"`
	CurrentMonthIncome   decimal.Decimal  `json:"currentMonthIncome"`
	CurrentMonthExpenses decimal.Decimal  `json:"currentMonthExpenses"`
	CurrentMonthProfit   decimal.Decimal  `json:"currentMonthProfit"`
	PreviousMonthProfit  decimal.Decimal  `json:"previousMonthProfit"`
	ProfitTrend          float64          `json:"profitTrend"` // 利润环比变化百分比
	TopIncomeCategories  []CategoryAmount `json:"topIncomeCategories"`
	TopExpenseCategories []CategoryAmount `json:"topExpenseCategories"`
}

// PeriodReport 指定月份的报表
type PeriodReport struct {
	Period             Period               `json:"period"`
	Label              string               `json:"label"`
	TotalIncome        decimal.Decimal      `json:"totalIncome"`
	TotalExpenses      decimal.Decimal      `json:"totalExpenses"`
	Profit             decimal.Decimal      `json:"profit"`
	IncomeByCategory   []CategoryShare      `json:"incomeByCategory"`
	ExpensesByCategory []CategoryShare      `json:"expensesByCategory"`
	Income             []models.Transaction `json:"income"`
	Expenses           []models.Transaction `json:"expenses"`

	names map[string]string
}

// CategoryName 报表生成时的类别名称，类别不存在时返回 UnknownCategory
func (r PeriodReport) CategoryName(id string) string {
	if name, ok := r.names[id]; ok {
		return name
	}
	return UnknownCategory
}

// CalculateDashboardStats 以 ref 所在月份为当月，计算收入、支出、利润、利润趋势和前三类别
func CalculateDashboardStats(snap models.Snapshot, ref time.Time) DashboardStats {
	current := PeriodOf(ref)
	previous := current.Previous()

	curIncome := Filter(snap.Income, current)
	curExpenses := Filter(snap.Expenses, current)

	income := Sum(curIncome)
	expenses := Sum(curExpenses)
	profit := income.Sub(expenses)
	prevProfit := Sum(Filter(snap.Income, previous)).Sub(Sum(Filter(snap.Expenses, previous)))

	return DashboardStats{
		Period:               current,
		CurrentMonthIncome:   income,
		CurrentMonthExpenses: expenses,
		CurrentMonthProfit:   profit,
		PreviousMonthProfit:  prevProfit,
		ProfitTrend:          ProfitTrend(profit, prevProfit),
		TopIncomeCategories:  top(ByCategory(snap, curIncome), TopCategoriesLimit),
		TopExpenseCategories: top(ByCategory(snap, curExpenses), TopCategoriesLimit),
	}
}

// ProfitTrend 利润变化百分比。
// 上期利润为 0 时：本期 > 0 记 100，否则记 0；其余情况为 (本期-上期)/|上期|*100。
func ProfitTrend(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).InexactFloat64()
}

// BuildPeriodReport 统计指定月份，类别不截断，并计算每个类别的占比
func BuildPeriodReport(snap models.Snapshot, period Period) PeriodReport {
	income := Filter(snap.Income, period)
	expenses := Filter(snap.Expenses, period)
	totalIncome := Sum(income)
	totalExpenses := Sum(expenses)

	names := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		if _, dup := names[c.ID]; !dup {
			names[c.ID] = c.Name
		}
	}

	return PeriodReport{
		Period:             period,
		Label:              period.Label(),
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Profit:             totalIncome.Sub(totalExpenses),
		IncomeByCategory:   shares(ByCategory(snap, income), totalIncome),
		ExpensesByCategory: shares(ByCategory(snap, expenses), totalExpenses),
		Income:             income,
		Expenses:           expenses,
		names:              names,
	}
}

// AvailableYears 所有交易出现过的年份（降序）；没有交易时返回当前年份
func AvailableYears(snap models.Snapshot, now time.Time) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, list := range [][]models.Transaction{snap.Income, snap.Expenses} {
		for _, tx := range list {
			y := tx.Date.Year()
			if _, ok := seen[y]; ok {
				continue
			}
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []int{now.Year()}
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}

// Filter 返回属于周期的交易，保持原有顺序
func Filter(list []models.Transaction, period Period) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range list {
		if period.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// Sum 金额合计
func Sum(list []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range list {
		total = total.Add(tx.Amount)
	}
	return total
}

// CategoryName 解析类别名称，类别不存在时返回 UnknownCategory
func CategoryName(snap models.Snapshot, id string) string {
	if c, ok := snap.CategoryByID(id); ok {
		return c.Name
	}
	return UnknownCategory
}

// ByCategory 按 categoryId 汇总并按金额降序排列。
// 分组顺序为类别在交易列表中首次出现的顺序，金额相同的类别保持该顺序。
func ByCategory(snap models.Snapshot, list []models.Transaction) []CategoryAmount {
	index := make(map[string]int)
	var groups []CategoryAmount
	for _, tx := range list {
		i, ok := index[tx.CategoryID]
		if !ok {
			i = len(groups)
			index[tx.CategoryID] = i
			groups = append(groups, CategoryAmount{
				CategoryID:   tx.CategoryID,
				CategoryName: CategoryName(snap, tx.CategoryID),
				Amount:       decimal.Zero,
			})
		}
		groups[i].Amount = groups[i].Amount.Add(tx.Amount)
	}
	slices.SortStableFunc(groups, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})
	if groups == nil {
		return []CategoryAmount{}
	}
	return groups
}

func top(groups []CategoryAmount, n int) []CategoryAmount {
	if len(groups) > n {
		return groups[:n]
	}
	return groups
}

func shares(groups []CategoryAmount, total decimal.Decimal) []CategoryShare {
	out := make([]CategoryShare, 0, len(groups))
	for _, g := range groups {
		pct := 0.0
		if total.IsPositive() {
			pct = g.Amount.Div(total).Mul(hundred).InexactFloat64()
		}
		out = append(out, CategoryShare{CategoryAmount: g, Percentage: pct})
	}
	return out
}
