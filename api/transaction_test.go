package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"cantina/ledger"
	"cantina/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionRouter(store *ledger.Store) *gin.Engine {
	router := gin.New()
	incomes := NewTransactionHandler(store, models.KindIncome, nil)
	expenses := NewTransactionHandler(store, models.KindExpense, nil)
	router.GET("/incomes", incomes.List)
	router.POST("/incomes", incomes.Create)
	router.DELETE("/incomes/:id", incomes.Delete)
	router.GET("/expenses", expenses.List)
	router.POST("/expenses", expenses.Create)
	router.DELETE("/expenses/:id", expenses.Delete)
	return router
}

func TestTransactionHandler_Create(t *testing.T) {
	store := newTestStore(t)
	router := transactionRouter(store)

	w := doJSON(router, "POST", "/incomes", `{"amount":100.50,"date":"2024-05-10","description":"Sales","category_id":"1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, "Lançamento criado", resp.Message)
	var tx models.Transaction
	require.NoError(t, json.Unmarshal(resp.Data, &tx))
	assert.Equal(t, "gen-1", tx.ID)
	assert.Equal(t, "2024-05-10", tx.Date.String())
	assert.Equal(t, "100.5", tx.Amount.String())

	require.Len(t, store.Snapshot().Income, 1)
	assert.Empty(t, store.Snapshot().Expenses)
}

func TestTransactionHandler_CreateValidation(t *testing.T) {
	router := transactionRouter(newTestStore(t))

	cases := []struct {
		name string
		path string
		body string
		msg  string
	}{
		{"zero amount", "/incomes", `{"amount":0,"date":"2024-05-10","description":"x","category_id":"1"}`, "maior que zero"},
		{"bad date", "/incomes", `{"amount":1,"date":"10/05/2024","description":"x","category_id":"1"}`, "Data inválida"},
		{"missing description", "/incomes", `{"amount":1,"date":"2024-05-10","category_id":"1"}`, "Parâmetros inválidos"},
		{"unknown category", "/incomes", `{"amount":1,"date":"2024-05-10","description":"x","category_id":"99"}`, "Categoria não encontrada"},
		{"category of other kind", "/expenses", `{"amount":1,"date":"2024-05-10","description":"x","category_id":"1"}`, "não corresponde"},
		{"malformed json", "/incomes", `{"amount":`, "Parâmetros inválidos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, "POST", tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w).Message, tc.msg)
		})
	}
}

func TestTransactionHandler_ListWithPeriod(t *testing.T) {
	router := transactionRouter(newTestStore(t))
	require.Equal(t, 200, doJSON(router, "POST", "/expenses", `{"amount":10,"date":"2024-05-10","description":"a","category_id":"4"}`).Code)
	require.Equal(t, 200, doJSON(router, "POST", "/expenses", `{"amount":20,"date":"2024-04-10","description":"b","category_id":"4"}`).Code)

	var all []models.Transaction
	require.NoError(t, json.Unmarshal(decode(t, doJSON(router, "GET", "/expenses", "")).Data, &all))
	assert.Len(t, all, 2)

	var may []models.Transaction
	require.NoError(t, json.Unmarshal(decode(t, doJSON(router, "GET", "/expenses?year=2024&month=5", "")).Data, &may))
	require.Len(t, may, 1)
	assert.Equal(t, "a", may[0].Description)

	assert.Equal(t, http.StatusBadRequest, doJSON(router, "GET", "/expenses?year=2024", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(router, "GET", "/expenses?year=2024&month=13", "").Code)

	var incomes []models.Transaction
	require.NoError(t, json.Unmarshal(decode(t, doJSON(router, "GET", "/incomes", "")).Data, &incomes))
	assert.Empty(t, incomes)
}

func TestTransactionHandler_Delete(t *testing.T) {
	store := newTestStore(t)
	router := transactionRouter(store)
	require.Equal(t, 200, doJSON(router, "POST", "/incomes", `{"amount":5,"date":"2024-05-10","description":"x","category_id":"2"}`).Code)

	assert.Equal(t, http.StatusNotFound, doJSON(router, "DELETE", "/incomes/missing", "").Code)
	// 支出列表中没有这条
	assert.Equal(t, http.StatusNotFound, doJSON(router, "DELETE", "/expenses/gen-1", "").Code)

	w := doJSON(router, "DELETE", "/incomes/gen-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Snapshot().Income)
}

func TestTransactionHandler_PersistFailureReturnsWarning(t *testing.T) {
	store := ledger.New(failingAdapter{})
	router := transactionRouter(store)

	w := doJSON(router, "POST", "/incomes", `{"amount":5,"date":"2024-05-10","description":"x","category_id":"1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, persistWarning, decode(t, w).Message)
	assert.Len(t, store.Snapshot().Income, 1)
}
