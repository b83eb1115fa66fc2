package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/model"
	"github.com/mkouadio/pharmacy-backend/internal/sale"
	"github.com/mkouadio/pharmacy-backend/internal/sale/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	lines []model.Sale
	err   error
}

func (s *stubUseCase) SubmitSale(ctx context.Context, input *dto.SubmitSaleInput) ([]model.Sale, error) {
	return s.lines, s.err
}

func newTestRouter(uc sale.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		Encoding:          "console",
		Level:             "error",
		DisableCaller:     true,
		DisableStacktrace: true,
	})
	r := gin.New()
	r.POST("/sales", NewSaleHandler(uc, log).Submit)
	return r
}

func postSale(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_Success(t *testing.T) {
	uc := &stubUseCase{lines: []model.Sale{
		{ID: "abc", ProductID: 1, Quantity: 4, TotalPrice: decimal.NewFromInt(10)},
	}}
	w := postSale(t, newTestRouter(uc), `{"basket":[{"product_id":1,"quantity":4}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var out dto.SaleOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Len(t, out.Lines, 1)
}

func TestSubmit_MalformedPayload(t *testing.T) {
	w := postSale(t, newTestRouter(&stubUseCase{}), `{"basket":"not-an-array"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_EmptyBasket(t *testing.T) {
	uc := &stubUseCase{err: sale.ErrEmptyBasket}
	w := postSale(t, newTestRouter(uc), `{"basket":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_InsufficientStock(t *testing.T) {
	uc := &stubUseCase{err: &sale.InsufficientStockError{ProductID: 7}}
	w := postSale(t, newTestRouter(uc), `{"basket":[{"product_id":7,"quantity":5}]}`)

	require.Equal(t, http.StatusConflict, w.Code)
	var out dto.SaleOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "product 7")
}

func TestSubmit_TransactionalFailure(t *testing.T) {
	uc := &stubUseCase{err: errors.New("pq: connection reset")}
	w := postSale(t, newTestRouter(uc), `{"basket":[{"product_id":1,"quantity":1}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// Persistence details must not leak to the caller.
	assert.NotContains(t, w.Body.String(), "pq:")
}
