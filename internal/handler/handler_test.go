package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhanaly/account-transfer-service/internal/events"
	"github.com/farhanaly/account-transfer-service/internal/models"
	"github.com/farhanaly/account-transfer-service/internal/storage/memory"
	"github.com/farhanaly/account-transfer-service/internal/transfer"
)

func newTestServer(t *testing.T) (*gin.Engine, *memory.AccountStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true

	store := memory.NewAccountStore()
	publisher := events.NewLogPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	engine := transfer.NewEngine(store, publisher, "transfer_notifications")

	r := gin.New()
	NewHandler(store, engine).RegisterRoutes(r)
	return r, store
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seed(t *testing.T, store *memory.AccountStore, id, balance string) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &models.Account{
		AccountID: id,
		Balance:   decimal.RequireFromString(balance),
	}))
}

func TestCreateAccount(t *testing.T) {
	r, store := newTestServer(t)

	w := perform(r, http.MethodPost, "/accounts", `{"accountId":"Id-123","balance":1000}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	account := store.Get("Id-123")
	require.NotNil(t, account)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestCreateAccount_Duplicate(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(r, http.MethodPost, "/accounts", `{"accountId":"Id-123","balance":1000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/accounts", `{"accountId":"Id-123","balance":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Account id Id-123 already exists!", w.Body.String())
}

func TestCreateAccount_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no accountId", `{"balance":1000}`},
		{"empty accountId", `{"accountId":"","balance":1000}`},
		{"no balance", `{"accountId":"Id-123"}`},
		{"negative balance", `{"accountId":"Id-123","balance":-1000}`},
		{"no body", ``},
		{"malformed json", `{"accountId":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := newTestServer(t)

			w := perform(r, http.MethodPost, "/accounts", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, store.Get("Id-123"))
		})
	}
}

func TestCreateAccount_ZeroBalance(t *testing.T) {
	r, store := newTestServer(t)

	w := perform(r, http.MethodPost, "/accounts", `{"accountId":"Id-123","balance":0}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.Get("Id-123"))
}

func TestGetAccount(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-777", "123.45")

	w := perform(r, http.MethodGet, "/accounts/Id-777", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accountId":"Id-777","balance":123.45}`, w.Body.String())
}

func TestGetAccount_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(r, http.MethodGet, "/accounts/Id-999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransferAmount_Success(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-123", "799.01")
	seed(t, store, "Id-456", "100")

	w := perform(r, http.MethodPost, "/accounts/transferAmount",
		`{"fromAccountId":"Id-123","toAccountId":"Id-456","amount":500}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transfer Successful.", w.Body.String())
	assert.True(t, store.Get("Id-123").Balance.Equal(decimal.RequireFromString("299.01")))
	assert.True(t, store.Get("Id-456").Balance.Equal(decimal.NewFromInt(600)))
}

func TestTransferAmount_InsufficientFunds(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-123", "99.01")
	seed(t, store, "Id-456", "100")

	w := perform(r, http.MethodPost, "/accounts/transferAmount",
		`{"fromAccountId":"Id-123","toAccountId":"Id-456","amount":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Given Account id: Id-123does not have sufficient funds to initiate transfer.", w.Body.String())
	assert.True(t, store.Get("Id-123").Balance.Equal(decimal.RequireFromString("99.01")))
	assert.True(t, store.Get("Id-456").Balance.Equal(decimal.NewFromInt(100)))
}

func TestTransferAmount_SameAccount(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-123", "1000")

	w := perform(r, http.MethodPost, "/accounts/transferAmount",
		`{"fromAccountId":"Id-123","toAccountId":"Id-123","amount":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fromAccountId and toAccountId cannot be same.", w.Body.String())
}

func TestTransferAmount_UnknownDestination(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-123", "1000")

	w := perform(r, http.MethodPost, "/accounts/transferAmount",
		`{"fromAccountId":"Id-123","toAccountId":"Id-999","amount":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No account found for given toAccountId.", w.Body.String())
	assert.True(t, store.Get("Id-123").Balance.Equal(decimal.NewFromInt(1000)))
}

func TestTransferAmount_UnknownSource(t *testing.T) {
	r, store := newTestServer(t)
	seed(t, store, "Id-456", "1000")

	w := perform(r, http.MethodPost, "/accounts/transferAmount",
		`{"fromAccountId":"Id-999","toAccountId":"Id-456","amount":500}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No account found for given fromAccountId.", w.Body.String())
}

func TestTransferAmount_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty fromAccountId", `{"fromAccountId":"","toAccountId":"Id-456","amount":500}`},
		{"empty toAccountId", `{"fromAccountId":"Id-123","toAccountId":"","amount":500}`},
		{"zero amount", `{"fromAccountId":"Id-123","toAccountId":"Id-456","amount":0}`},
		{"negative amount", `{"fromAccountId":"Id-123","toAccountId":"Id-456","amount":-5}`},
		{"no body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := newTestServer(t)
			seed(t, store, "Id-123", "1000")
			seed(t, store, "Id-456", "1000")

			w := perform(r, http.MethodPost, "/accounts/transferAmount", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, store.Get("Id-123").Balance.Equal(decimal.NewFromInt(1000)))
			assert.True(t, store.Get("Id-456").Balance.Equal(decimal.NewFromInt(1000)))
		})
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
