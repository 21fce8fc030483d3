// Package export 把月度报表导出为 CSV 或 Excel 文件。
package export

import (
	"fmt"
	"strings"

	"cantina/models"
	"cantina/report"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FileName 下载文件名，如 relatorio-cantina-2024-5.csv
func FileName(p report.Period, ext string) string {
	return fmt.Sprintf("relatorio-cantina-%d-%d.%s", p.Year, int(p.Month), strings.TrimPrefix(ext, "."))
}

// FormatCurrency 巴西雷亚尔格式，如 R$ 1.234,56
func FormatCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "R$ " + ptBR.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatAmount CSV 中的金额：小数点换成逗号，不加千分位
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

// FormatDate 日/月/年
func FormatDate(d models.Date) string {
	return d.Format("02/01/2006")
}
