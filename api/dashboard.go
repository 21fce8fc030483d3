package api

import (
	"time"

	"cantina/ledger"
	"cantina/models"
	"cantina/report"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘与快照查询
type DashboardHandler struct {
	store *ledger.Store
	now   func() time.Time
}

func NewDashboardHandler(store *ledger.Store, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{store: store, now: now}
}

// Dashboard 当月统计
// @Summary 仪表盘统计
// @Description 当月收入、支出、利润、与上月相比的利润趋势，以及收入/支出前三类别
// @Tags 统计
// @Produce json
// @Param date query string false "参考日期 (2024-05-15)，默认为服务器当天"
// @Success 200 {object} Response{data=report.DashboardStats} "获取成功"
// @Failure 400 {object} Response "日期格式错误"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ref := h.now()
	if s := c.Query("date"); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, "Data inválida, use o formato AAAA-MM-DD")
			return
		}
		ref = d.Time
	}
	Success(c, report.CalculateDashboardStats(h.store.Snapshot(), ref))
}

// Snapshot 完整账本
// @Summary 获取完整账本
// @Description 返回收入、支出和类别三个列表
// @Tags 统计
// @Produce json
// @Success 200 {object} Response{data=models.Snapshot} "获取成功"
// @Router /api/v1/snapshot [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	Success(c, h.store.Snapshot())
}
