package service

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"cantina/config"
	"cantina/export"
	"cantina/report"

	"gopkg.in/gomail.v2"
)

// ErrMailDisabled 邮件服务未启用
var ErrMailDisabled = errors.New("邮件服务未启用，请配置 CANTINA_EMAIL_ENABLED=true")

// Sender 发送组装好的邮件，测试中替换为内存实现
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ReportMailer 把月度报表通过邮件发送出去
type ReportMailer struct {
	cfg    *config.EmailConfig
	sender Sender
}

// NewReportMailer 创建邮件服务
func NewReportMailer(cfg *config.EmailConfig) *ReportMailer {
	return &ReportMailer{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// WithSender 替换发送实现
func (s *ReportMailer) WithSender(sender Sender) *ReportMailer {
	s.sender = sender
	return s
}

// Enabled 是否已启用
func (s *ReportMailer) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendPeriodReport 发送月度报表，HTML 正文附带 CSV 附件
func (s *ReportMailer) SendPeriodReport(to string, rep report.PeriodReport, csv []byte) error {
	if !s.Enabled() {
		return ErrMailDisabled
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("[Cantina Financeira] Relatório de %s", rep.Label))
	m.SetBody("text/html", s.generateReportBody(rep))
	if len(csv) > 0 {
		m.Attach(export.FileName(rep.Period, "csv"),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(csv))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"text/csv; charset=utf-8"}}),
		)
	}

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

// generateReportBody 生成报表邮件内容
func (s *ReportMailer) generateReportBody(rep report.PeriodReport) string {
	resultLabel, resultColor := "Lucro", "#059669"
	if rep.Profit.IsNegative() {
		resultLabel, resultColor = "Prejuízo", "#dc2626"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content h3 { color: #333; margin: 24px 0 8px; }
        table { width: 100%%; border-collapse: collapse; }
        td, th { padding: 8px; border-bottom: 1px solid #eee; text-align: left; }
        .amount { text-align: right; }
        .result { font-size: 20px; font-weight: bold; color: %s; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Cantina Financeira</h1>
            <p>Relatório de %s</p>
        </div>
        <div class="content">
            <table>
                <tr><td>Total de Receitas</td><td class="amount">%s</td></tr>
                <tr><td>Total de Despesas</td><td class="amount">%s</td></tr>
                <tr><td>%s</td><td class="amount result">%s</td></tr>
            </table>
            <h3>Receitas por categoria</h3>
            %s
            <h3>Despesas por categoria</h3>
            %s
        </div>
        <div class="footer">
            <p>O relatório completo segue em anexo (CSV).</p>
        </div>
    </div>
</body>
</html>
`, resultColor, html.EscapeString(rep.Label),
		export.FormatCurrency(rep.TotalIncome),
		export.FormatCurrency(rep.TotalExpenses),
		resultLabel, export.FormatCurrency(rep.Profit),
		shareTable(rep.IncomeByCategory),
		shareTable(rep.ExpensesByCategory))
}

func shareTable(shares []report.CategoryShare) string {
	if len(shares) == 0 {
		return `<p style="color: #6c757d;">Nenhum lançamento no período.</p>`
	}
	var b strings.Builder
	b.WriteString("<table>")
	for _, s := range shares {
		fmt.Fprintf(&b, `<tr><td>%s</td><td class="amount">%s</td><td class="amount">%.1f%%</td></tr>`,
			html.EscapeString(s.CategoryName), export.FormatCurrency(s.Amount), s.Percentage)
	}
	b.WriteString("</table>")
	return b.String()
}
