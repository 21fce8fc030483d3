package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"cantina/models"
	"cantina/report"
)

const utf8BOM = "\xEF\xBB\xBF"

var csvHeader = []string{"Tipo", "Data", "Descrição", "Categoria", "Valor (R$)", "Observações"}

// CSV 以 ; 分隔导出报表：先收入后支出，最后是合计行
func CSV(rep report.PeriodReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	// 添加 BOM，Excel 打开时正确识别 UTF-8
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(buf)
	w.Comma = ';'

	rows := [][]string{csvHeader}
	rows = appendTransactions(rows, "Receita", rep.Income, rep)
	rows = appendTransactions(rows, "Despesa", rep.Expenses, rep)
	rows = append(rows,
		[]string{"", "", "", "", "", ""},
		[]string{"Totais", "", "", "", "", ""},
		[]string{"Total de Receitas", "", "", "", FormatAmount(rep.TotalIncome), ""},
		[]string{"Total de Despesas", "", "", "", FormatAmount(rep.TotalExpenses), ""},
		[]string{"Lucro/Prejuízo", "", "", "", FormatAmount(rep.Profit), ""},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("生成 CSV 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func appendTransactions(rows [][]string, label string, list []models.Transaction, rep report.PeriodReport) [][]string {
	for _, tx := range list {
		rows = append(rows, []string{
			label,
			FormatDate(tx.Date),
			tx.Description,
			rep.CategoryName(tx.CategoryID),
			FormatAmount(tx.Amount),
			tx.Notes,
		})
	}
	return rows
}
