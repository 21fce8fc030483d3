package export

import (
	"bytes"
	"fmt"

	"cantina/models"
	"cantina/report"

	"github.com/xuri/excelize/v2"
)

// Excel 工作表名称
const (
	SheetSummary  = "Resumo"
	SheetIncome   = "Receitas"
	SheetExpenses = "Despesas"
)

// ContentTypeXLSX Excel 文件的 MIME 类型
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type styles struct {
	header  int
	data    int
	money   int
	summary int
}

// Excel 生成包含汇总、收入、支出三个工作表的报表，调用方负责 Close
func Excel(rep report.PeriodReport) (*excelize.File, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, st, rep); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTransactions(f, st, SheetIncome, rep.Income, rep.TotalIncome.InexactFloat64(), rep); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTransactions(f, st, SheetExpenses, rep.Expenses, rep.TotalExpenses.InexactFloat64(), rep); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// ExcelBytes 生成报表并写入内存
func ExcelBytes(rep report.PeriodReport) ([]byte, error) {
	f, err := Excel(rep)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("写入 Excel 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	// 表头样式
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"10B981"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return st, err
	}
	// 数据样式
	if st.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return st, err
	}
	// 金额列：两位小数
	if st.money, err = f.NewStyle(&excelize.Style{
		NumFmt:    4,
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return st, err
	}
	// 汇总行
	st.summary, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		NumFmt:    4,
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorder,
	})
	return st, err
}

// sheetWriter 写单个工作表，记录第一个错误，之后的调用直接跳过
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, from, to, width)
	}
}

func (w *sheetWriter) value(cell string, v interface{}) {
	if w.err == nil {
		w.err = w.f.SetCellValue(w.sheet, cell, v)
	}
}

func (w *sheetWriter) style(from, to string, id int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, id)
	}
}

func (w *sheetWriter) merge(from, to string) {
	if w.err == nil {
		w.err = w.f.MergeCell(w.sheet, from, to)
	}
}

func writeSummary(f *excelize.File, st styles, rep report.PeriodReport) error {
	w := &sheetWriter{f: f, sheet: SheetSummary}
	w.width("A", "A", 28)
	w.width("B", "C", 16)

	w.value("A1", "Relatório "+rep.Label)
	w.merge("A1", "C1")
	w.style("A1", "C1", st.header)

	totals := []struct {
		label string
		value float64
	}{
		{"Total de Receitas", rep.TotalIncome.InexactFloat64()},
		{"Total de Despesas", rep.TotalExpenses.InexactFloat64()},
		{"Lucro/Prejuízo", rep.Profit.InexactFloat64()},
	}
	row := 2
	for _, t := range totals {
		w.value(fmt.Sprintf("A%d", row), t.label)
		w.value(fmt.Sprintf("B%d", row), t.value)
		w.style(fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), st.summary)
		row++
	}

	row++
	for _, block := range []struct {
		title  string
		shares []report.CategoryShare
	}{
		{"Receitas por categoria", rep.IncomeByCategory},
		{"Despesas por categoria", rep.ExpensesByCategory},
	} {
		headers := []string{block.title, "Valor (R$)", "%"}
		for i, h := range headers {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			w.value(cell, h)
			w.style(cell, cell, st.header)
		}
		row++
		for _, s := range block.shares {
			w.value(fmt.Sprintf("A%d", row), s.CategoryName)
			w.value(fmt.Sprintf("B%d", row), s.Amount.InexactFloat64())
			w.value(fmt.Sprintf("C%d", row), s.Percentage)
			w.style(fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.data)
			w.style(fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), st.money)
			row++
		}
		row++
	}
	return w.err
}

func writeTransactions(f *excelize.File, st styles, sheet string, list []models.Transaction, total float64, rep report.PeriodReport) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	w := &sheetWriter{f: f, sheet: sheet}

	// 设置列宽
	w.width("A", "A", 12)
	w.width("B", "B", 30)
	w.width("C", "C", 20)
	w.width("D", "D", 14)
	w.width("E", "E", 30)

	headers := []string{"Data", "Descrição", "Categoria", "Valor (R$)", "Observações"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		w.value(cell, h)
		w.style(cell, cell, st.header)
	}

	for i, tx := range list {
		row := i + 2
		w.value(fmt.Sprintf("A%d", row), FormatDate(tx.Date))
		w.value(fmt.Sprintf("B%d", row), tx.Description)
		w.value(fmt.Sprintf("C%d", row), rep.CategoryName(tx.CategoryID))
		w.value(fmt.Sprintf("D%d", row), tx.Amount.InexactFloat64())
		w.value(fmt.Sprintf("E%d", row), tx.Notes)
		w.style(fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), st.data)
		w.style(fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.money)
		w.style(fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), st.data)
	}

	// 合计行
	summaryRow := len(list) + 2
	w.value(fmt.Sprintf("A%d", summaryRow), "Total")
	w.merge(fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	w.value(fmt.Sprintf("D%d", summaryRow), total)
	w.value(fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d lançamentos", len(list)))
	w.style(fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), st.summary)
	return w.err
}
