package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cantina/ledger"
	"cantina/models"
	"cantina/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	var mu sync.Mutex
	n := 0
	return ledger.New(storage.NewMemoryAdapter(),
		ledger.WithClock(func() time.Time { return testNow }),
		ledger.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
}

// 保存总是失败的存储
type failingAdapter struct{}

func (failingAdapter) Load(context.Context) (models.Snapshot, error) {
	return models.Snapshot{}, storage.ErrNotFound
}

func (failingAdapter) Save(context.Context, models.Snapshot) error {
	return errors.New("disk full")
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func init() {
	gin.SetMode(gin.TestMode)
}
