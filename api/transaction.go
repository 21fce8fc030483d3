package api

import (
	"strings"

	"cantina/ledger"
	"cantina/logger"
	"cantina/middleware"
	"cantina/models"
	"cantina/report"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransactionHandler 收入或支出处理器，kind 决定操作哪个列表
type TransactionHandler struct {
	store *ledger.Store
	kind  models.Kind
	log   logrus.FieldLogger
}

func NewTransactionHandler(store *ledger.Store, kind models.Kind, log logrus.FieldLogger) *TransactionHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &TransactionHandler{store: store, kind: kind, log: log.WithField("kind", kind)}
}

type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"100.50"`
	Date        string          `json:"date" binding:"required" example:"2024-05-10"`
	Description string          `json:"description" binding:"required,max=200" example:"Vendas do almoço"`
	CategoryID  string          `json:"category_id" binding:"required" example:"1"`
	Notes       string          `json:"notes" binding:"max=500" example:"Pagamento em dinheiro"`
}

// List 交易列表
// @Summary 获取收入/支出列表
// @Description 返回收入（/incomes）或支出（/expenses）列表，可按年月筛选
// @Tags 交易
// @Produce json
// @Param year query int false "年份，如 2024（需与 month 同时提供）"
// @Param month query int false "月份 1-12"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/incomes [get]
// @Router /api/v1/expenses [get]
func (h *TransactionHandler) List(c *gin.Context) {
	period, filtered, err := periodQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	list := h.store.Snapshot().Transactions(h.kind)
	if filtered {
		list = report.Filter(list, period)
	}
	if list == nil {
		list = []models.Transaction{}
	}
	Success(c, list)
}

// Create 新增交易
// @Summary 新增收入/支出
// @Description 新增一条交易，类别必须存在且类型与交易一致
// @Tags 交易
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/incomes [post]
// @Router /api/v1/expenses [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}
	date, err := models.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		BadRequest(c, "Data inválida, use o formato AAAA-MM-DD")
		return
	}

	cat, ok := h.store.CategoryByID(req.CategoryID)
	if !ok {
		BadRequest(c, "Categoria não encontrada")
		return
	}
	if cat.Type != h.kind {
		BadRequest(c, "A categoria não corresponde ao tipo do lançamento")
		return
	}

	tx, err := h.store.AddTransaction(c.Request.Context(), h.kind, models.TransactionInput{
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Notes:       strings.TrimSpace(req.Notes),
	})
	mutationResult(c, middleware.Logger(c, h.log), err, "Lançamento criado", tx)
}

// Delete 删除交易
// @Summary 删除收入/支出
// @Description 按 id 删除交易
// @Tags 交易
// @Produce json
// @Param id path string true "交易 ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "交易不存在"
// @Router /api/v1/incomes/{id} [delete]
// @Router /api/v1/expenses/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	removed, err := h.store.DeleteTransaction(c.Request.Context(), h.kind, c.Param("id"))
	if !removed && err == nil {
		NotFound(c, "Lançamento não encontrado")
		return
	}
	mutationResult(c, middleware.Logger(c, h.log), err, "Lançamento excluído", nil)
}
