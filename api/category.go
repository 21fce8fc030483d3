package api

import (
	"strings"

	"cantina/ledger"
	"cantina/logger"
	"cantina/middleware"
	"cantina/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CategoryHandler 类别管理
type CategoryHandler struct {
	store *ledger.Store
	log   logrus.FieldLogger
}

func NewCategoryHandler(store *ledger.Store, log logrus.FieldLogger) *CategoryHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &CategoryHandler{store: store, log: log}
}

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50" example:"Delivery"`
	Type  string `json:"type" binding:"required,oneof=income expense" example:"income"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#10B981"` // 颜色代码，为空时使用默认灰色
}

type CategoryUpdateRequest struct {
	Name  string  `json:"name" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color" binding:"omitempty,max=20"`
}

// List 类别列表
// @Summary 获取类别列表
// @Description 获取全部类别，可按 type 过滤
// @Tags 类别
// @Produce json
// @Param type query string false "income 或 expense"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Failure 400 {object} Response "类型无效"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	if t := c.Query("type"); t != "" {
		kind, err := models.ParseKind(t)
		if err != nil {
			BadRequest(c, validationMessage(err))
			return
		}
		Success(c, snap.CategoriesOf(kind))
		return
	}
	list := snap.Categories
	if list == nil {
		list = []models.Category{}
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建收入或支出类别
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}
	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.DefaultColor
	}
	cat, err := h.store.AddCategory(c.Request.Context(), models.CategoryInput{
		Name:  req.Name,
		Type:  models.Kind(req.Type),
		Color: color,
	})
	mutationResult(c, middleware.Logger(c, h.log), err, "Categoria criada", cat)
}

// Update 更新类别
// @Summary 更新类别
// @Description 修改类别名称或颜色，类型保持不变
// @Tags 类别
// @Accept json
// @Produce json
// @Param id path string true "类别 ID"
// @Param request body CategoryUpdateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}
	cat, ok := h.store.CategoryByID(c.Param("id"))
	if !ok {
		NotFound(c, "Categoria não encontrada")
		return
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		cat.Name = name
	}
	if req.Color != nil {
		if color := strings.TrimSpace(*req.Color); color != "" {
			cat.Color = color
		}
	}

	updated, err := h.store.UpdateCategory(c.Request.Context(), cat)
	if !updated && err == nil {
		// 并发删除
		NotFound(c, "Categoria não encontrada")
		return
	}
	mutationResult(c, middleware.Logger(c, h.log), err, "Categoria atualizada", cat)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 删除类别，引用它的交易保留并显示为 Desconhecido
// @Tags 类别
// @Produce json
// @Param id path string true "类别 ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	removed, err := h.store.DeleteCategory(c.Request.Context(), c.Param("id"))
	if !removed && err == nil {
		NotFound(c, "Categoria não encontrada")
		return
	}
	mutationResult(c, middleware.Logger(c, h.log), err, "Categoria excluída", nil)
}
