package api

import (
	"errors"
	"net/http"

	"cantina/ledger"
	"cantina/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// 持久化失败时仍返回 200，数据已在内存中生效
const persistWarning = "Salvo, mas não foi possível gravar no armazenamento"

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServiceUnavailable 503 错误响应
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// mutationResult 统一处理写操作的结果：
// 持久化失败只返回警告，校验错误返回 400，其余返回 500
func mutationResult(c *gin.Context, log logrus.FieldLogger, err error, okMessage string, data interface{}) {
	switch {
	case err == nil:
		SuccessWithMessage(c, okMessage, data)
	case errors.Is(err, ledger.ErrPersist):
		log.WithError(err).Warn("内存已更新，持久化失败")
		SuccessWithMessage(c, persistWarning, data)
	case isValidationError(err):
		BadRequest(c, validationMessage(err))
	default:
		log.WithError(err).Error("写操作失败")
		InternalError(c, SafeErrorMessage(err, "Falha na operação"))
	}
}

var validationMessages = map[error]string{
	models.ErrInvalidAmount:    "O valor deve ser maior que zero",
	models.ErrInvalidDate:      "Data inválida, use o formato AAAA-MM-DD",
	models.ErrEmptyDescription: "A descrição é obrigatória",
	models.ErrEmptyCategory:    "A categoria é obrigatória",
	models.ErrInvalidKind:      "Tipo inválido, use income ou expense",
	models.ErrEmptyName:        "O nome da categoria é obrigatório",
	models.ErrEmptyColor:       "A cor da categoria é obrigatória",
}

func isValidationError(err error) bool {
	for target := range validationMessages {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func validationMessage(err error) string {
	for target, msg := range validationMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}
