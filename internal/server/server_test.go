package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cart-service/internal/api"
	"cart-service/internal/auth"
	"cart-service/internal/config"
	"cart-service/internal/entity"
)

type stubCarts struct{}

func (stubCarts) LookupCart(ctx context.Context, serviceName string) ([]entity.CatalogEntry, error) {
	return []entity.CatalogEntry{{ServiceID: 1, ServiceName: serviceName, ServiceList: []entity.ServiceListItem{}}}, nil
}

type countingBills struct {
	calls int
}

func (b *countingBills) CommitBill(ctx context.Context, identity entity.UserIdentity, bill entity.BillSubmission) ([]entity.OrderDetail, error) {
	b.calls++
	return []entity.OrderDetail{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "server-secret",
		RateLimit:    100,
		RateBurst:    100,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
}

func newTestServer(cfg *config.Config, bills *countingBills) *echo.Echo {
	return New(cfg, api.NewCartHandler(stubCarts{}), api.NewBillHandler(bills))
}

func request(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(testConfig(), &countingBills{})

	rec := request(e, http.MethodGet, "/carts/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "cart-service", body["service"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRoutes(t *testing.T) {
	cfg := testConfig()
	bills := &countingBills{}
	e := newTestServer(cfg, bills)

	rec := request(e, http.MethodGet, "/cleaning", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodPost, "/cleaning", `{"summaryData":[{"name":"wash","price":10,"count":3}]}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"netPrice":30}`, rec.Body.String())

	token, err := auth.IssueToken(cfg.JWTSecret, "user-1", "", time.Hour)
	require.NoError(t, err)
	rec = request(e, http.MethodPost, "/cleaning/bill", `{"serviceId":1,"order":{"serviceInfo":[]},"netPrice":0}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, bills.calls)
}

func TestBillRequiresToken(t *testing.T) {
	cfg := testConfig()
	bills := &countingBills{}
	e := newTestServer(cfg, bills)

	foreign, err := auth.IssueToken("another-secret", "user-1", "", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", foreign} {
		rec := request(e, http.MethodPost, "/cleaning/bill", `{"serviceId":1,"order":{"serviceInfo":[]}}`, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	assert.Zero(t, bills.calls)
}

func TestMalformedBillIsRejectedBeforeCommit(t *testing.T) {
	cfg := testConfig()
	bills := &countingBills{}
	e := newTestServer(cfg, bills)

	token, err := auth.IssueToken(cfg.JWTSecret, "user-1", "", time.Hour)
	require.NoError(t, err)

	rec := request(e, http.MethodPost, "/cleaning/bill", `{"serviceId":1,"order":{}}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, bills.calls)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 2
	e := newTestServer(cfg, &countingBills{})

	for i := 0; i < 2; i++ {
		rec := request(e, http.MethodGet, "/carts/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := request(e, http.MethodGet, "/carts/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}
