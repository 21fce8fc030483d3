package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"cantina/models"
	"cantina/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var may = report.Period{Year: 2024, Month: time.May}

func sampleReport(t *testing.T) report.PeriodReport {
	t.Helper()
	snap := models.DefaultSnapshot().
		WithTransaction(models.KindIncome, models.Transaction{
			ID: "a", Amount: decimal.RequireFromString("1250.5"), Date: models.NewDate(2024, time.May, 3),
			Description: "Vendas; balcão", CategoryID: "1",
		}).
		WithTransaction(models.KindExpense, models.Transaction{
			ID: "b", Amount: decimal.RequireFromString("40"), Date: models.NewDate(2024, time.May, 9),
			Description: "Farinha", CategoryID: "4", Notes: "fornecedor novo",
		}).
		WithTransaction(models.KindExpense, models.Transaction{
			ID: "c", Amount: decimal.RequireFromString("10.25"), Date: models.NewDate(2024, time.May, 10),
			Description: "Gás", CategoryID: "gone",
		})
	return report.BuildPeriodReport(snap, may)
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleReport(t))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte(utf8BOM)))

	r := csv.NewReader(bytes.NewReader(data[len(utf8BOM):]))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 9)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"Receita", "03/05/2024", "Vendas; balcão", "Vendas diárias", "1250,5", ""}, rows[1])
	assert.Equal(t, []string{"Despesa", "09/05/2024", "Farinha", "Ingredientes", "40", "fornecedor novo"}, rows[2])
	assert.Equal(t, "Desconhecido", rows[3][3])
	assert.Equal(t, "10,25", rows[3][4])
	assert.Equal(t, []string{"", "", "", "", "", ""}, rows[4])
	assert.Equal(t, "Totais", rows[5][0])
	assert.Equal(t, []string{"Total de Receitas", "", "", "", "1250,5", ""}, rows[6])
	assert.Equal(t, []string{"Total de Despesas", "", "", "", "50,25", ""}, rows[7])
	assert.Equal(t, []string{"Lucro/Prejuízo", "", "", "", "1200,25", ""}, rows[8])
}

func TestCSV_EmptyPeriod(t *testing.T) {
	data, err := CSV(report.BuildPeriodReport(models.DefaultSnapshot(), may))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), utf8BOM)), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "Lucro/Prejuízo;;;;0;", lines[5])
}

func TestExcel(t *testing.T) {
	f, err := Excel(sampleReport(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetIncome, SheetExpenses}, f.GetSheetList())

	v, err := f.GetCellValue(SheetIncome, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Vendas; balcão", v)

	v, err = f.GetCellValue(SheetExpenses, "C3")
	require.NoError(t, err)
	assert.Equal(t, report.UnknownCategory, v)

	v, err = f.GetCellValue(SheetExpenses, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)

	v, err = f.GetCellValue(SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Relatório maio 2024", v)
}

func TestWriteSummary_ReturnsSheetError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	st, err := newStyles(f)
	require.NoError(t, err)

	// 未重命名 Sheet1，汇总表不存在
	err = writeSummary(f, st, sampleReport(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), SheetSummary)
}

func TestSheetWriter_StopsAtFirstError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, sheet: "Sheet1"}
	w.value("A1", "ok")
	w.merge("bad", "C1")
	require.Error(t, w.err)
	first := w.err
	w.value("A2", "skipped")
	assert.Equal(t, first, w.err)

	v, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestExcelBytes(t *testing.T) {
	data, err := ExcelBytes(sampleReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(SheetSummary, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total de Receitas", v)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "relatorio-cantina-2024-5.csv", FileName(may, "csv"))
	assert.Equal(t, "relatorio-cantina-2024-12.xlsx", FileName(report.Period{Year: 2024, Month: time.December}, ".xlsx"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatCurrency(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "-R$ 40,50", FormatCurrency(decimal.RequireFromString("-40.5")))
}
