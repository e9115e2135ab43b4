package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/farhanaly/account-transfer-service/internal/interfaces"
	"github.com/farhanaly/account-transfer-service/internal/middleware"
	"github.com/farhanaly/account-transfer-service/internal/models"
	"github.com/farhanaly/account-transfer-service/internal/transfer"
)

// Handler holds the HTTP boundary dependencies. Field validation lives here;
// business rules live in the engine.
type Handler struct {
	store  interfaces.AccountStore
	engine *transfer.Engine
}

func NewHandler(store interfaces.AccountStore, engine *transfer.Engine) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
	}
}

// RegisterRoutes sets up the Gin routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	accounts := r.Group("/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("/:accountId", h.GetAccount)
		accounts.POST("/transferAmount", h.TransferAmount)
	}
}

// Health returns a health check response.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "account-transfer-service",
	})
}

// CreateAccountRequest is the request body for creating an account. Balance
// is a pointer so a missing field can be told apart from an explicit zero.
type CreateAccountRequest struct {
	AccountID string           `json:"accountId"`
	Balance   *decimal.Decimal `json:"balance"`
}

// CreateAccount handles POST /accounts.
func (h *Handler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountId must not be empty"})
		return
	}
	if req.Balance == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "balance is required"})
		return
	}
	if req.Balance.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "balance must not be negative"})
		return
	}

	account := &models.Account{
		AccountID: req.AccountID,
		Balance:   *req.Balance,
	}
	if err := h.store.Create(c.Request.Context(), account); err != nil {
		var dup *interfaces.DuplicateAccountError
		if errors.As(err, &dup) {
			c.String(http.StatusBadRequest, dup.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	middleware.AccountsCreatedTotal.Inc()
	c.Status(http.StatusCreated)
}

// GetAccount handles GET /accounts/:accountId.
func (h *Handler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountId")

	account := h.store.Get(accountID)
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// TransferAmount handles POST /accounts/transferAmount. Success and failure
// bodies are plain strings; existing clients match on them verbatim.
func (h *Handler) TransferAmount(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.FromAccountID == "" || req.ToAccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromAccountId and toAccountId must not be empty"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	if err := h.engine.Transfer(c.Request.Context(), req); err != nil {
		var ve *transfer.ValidationError
		if errors.As(err, &ve) {
			middleware.TransfersTotal.WithLabelValues("rejected").Inc()
			c.String(http.StatusBadRequest, ve.Error())
			return
		}
		middleware.TransfersTotal.WithLabelValues("failed").Inc()
		c.String(http.StatusInternalServerError, "Transfer Failed.")
		return
	}

	middleware.TransfersTotal.WithLabelValues("success").Inc()
	c.String(http.StatusOK, "Transfer Successful.")
}
