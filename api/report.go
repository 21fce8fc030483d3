package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cantina/export"
	"cantina/ledger"
	"cantina/logger"
	"cantina/middleware"
	"cantina/report"
	"cantina/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReportMailer 发送月度报表邮件
type ReportMailer interface {
	Enabled() bool
	SendPeriodReport(to string, rep report.PeriodReport, csv []byte) error
}

// ReportHandler 月度报表、导出与邮件发送
type ReportHandler struct {
	store  *ledger.Store
	mailer ReportMailer
	now    func() time.Time
	log    logrus.FieldLogger
}

func NewReportHandler(store *ledger.Store, mailer ReportMailer, now func() time.Time, log logrus.FieldLogger) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Discard()
	}
	return &ReportHandler{store: store, mailer: mailer, now: now, log: log}
}

type EmailReportRequest struct {
	To string `json:"to" binding:"required,email" example:"dono@cantina.com"`
}

// Years 有数据的年份
// @Summary 可选年份
// @Description 所有交易出现过的年份（降序），没有交易时返回当前年份
// @Tags 报表
// @Produce json
// @Success 200 {object} Response{data=[]int} "获取成功"
// @Router /api/v1/reports/years [get]
func (h *ReportHandler) Years(c *gin.Context) {
	Success(c, report.AvailableYears(h.store.Snapshot(), h.now()))
}

// Get 月度报表
// @Summary 月度报表
// @Description 指定月份的收入、支出、利润及各类别占比
// @Tags 报表
// @Produce json
// @Param year path int true "年份"
// @Param month path int true "月份 1-12"
// @Success 200 {object} Response{data=report.PeriodReport} "获取成功"
// @Failure 400 {object} Response "年月无效"
// @Router /api/v1/reports/{year}/{month} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	rep, ok := h.build(c)
	if !ok {
		return
	}
	Success(c, rep)
}

// ExportCSV 导出 CSV
// @Summary 导出月度报表为 CSV
// @Description 以 ; 分隔的 CSV，先收入后支出，末尾为合计
// @Tags 报表
// @Produce text/csv
// @Param year path int true "年份"
// @Param month path int true "月份 1-12"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "年月无效"
// @Router /api/v1/reports/{year}/{month}/export/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	rep, ok := h.build(c)
	if !ok {
		return
	}
	data, err := export.CSV(rep)
	if err != nil {
		middleware.Logger(c, h.log).WithError(err).Error("生成 CSV 失败")
		InternalError(c, SafeErrorMessage(err, "Falha ao gerar CSV"))
		return
	}
	attachment(c, export.FileName(rep.Period, "csv"), "text/csv; charset=utf-8", data)
}

// ExportExcel 导出 Excel
// @Summary 导出月度报表为 Excel
// @Description 包含汇总、收入、支出三个工作表
// @Tags 报表
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year path int true "年份"
// @Param month path int true "月份 1-12"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "年月无效"
// @Router /api/v1/reports/{year}/{month}/export/excel [get]
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	rep, ok := h.build(c)
	if !ok {
		return
	}
	data, err := export.ExcelBytes(rep)
	if err != nil {
		middleware.Logger(c, h.log).WithError(err).Error("生成 Excel 失败")
		InternalError(c, SafeErrorMessage(err, "Falha ao gerar Excel"))
		return
	}
	attachment(c, export.FileName(rep.Period, "xlsx"), export.ContentTypeXLSX, data)
}

// Email 发送报表邮件
// @Summary 通过邮件发送月度报表
// @Description 发送 HTML 摘要并附带 CSV
// @Tags 报表
// @Accept json
// @Produce json
// @Param year path int true "年份"
// @Param month path int true "月份 1-12"
// @Param request body EmailReportRequest true "收件人"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 503 {object} Response "邮件服务未启用"
// @Router /api/v1/reports/{year}/{month}/email [post]
func (h *ReportHandler) Email(c *gin.Context) {
	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}
	rep, ok := h.build(c)
	if !ok {
		return
	}
	if h.mailer == nil || !h.mailer.Enabled() {
		ServiceUnavailable(c, service.ErrMailDisabled.Error())
		return
	}
	data, err := export.CSV(rep)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Falha ao gerar CSV"))
		return
	}

	log := middleware.Logger(c, h.log).WithFields(logrus.Fields{"to": req.To, "period": rep.Label})
	if err := h.mailer.SendPeriodReport(req.To, rep, data); err != nil {
		if errors.Is(err, service.ErrMailDisabled) {
			ServiceUnavailable(c, err.Error())
			return
		}
		log.WithError(err).Error("发送报表邮件失败")
		InternalError(c, SafeErrorMessage(err, "Falha ao enviar e-mail"))
		return
	}
	log.Info("报表邮件已发送")
	SuccessWithMessage(c, "Relatório enviado", nil)
}

func (h *ReportHandler) build(c *gin.Context) (report.PeriodReport, bool) {
	period, err := periodParam(c)
	if err != nil {
		BadRequest(c, err.Error())
		return report.PeriodReport{}, false
	}
	return report.BuildPeriodReport(h.store.Snapshot(), period), true
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, contentType, data)
}
