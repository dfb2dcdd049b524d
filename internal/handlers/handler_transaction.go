package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/trading_ledger/internal/core/ports/services"
	"github.com/SscSPs/trading_ledger/internal/dto"
	"github.com/SscSPs/trading_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// RegisterTransactionRoutes registers the /transactions routes on rg.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// respondError writes the status that matches err's kind. Internal failures
// carry the wrapped cause in "details".
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// postTransaction godoc
// @Summary Post a transaction
// @Description Validates a transaction and posts it to the ledger in a single database transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.TransactionRequest true "Transaction with its lines"
// @Success 201 {object} dto.TransactionIDResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate voucher, unknown reference or insufficient stock"
// @Failure 500 {object} map[string]string "Posting failed"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("voucher_no", req.VoucherNo), slog.String("type", req.Type))
	logger.Info("Received request to post transaction", slog.Int("line_count", len(req.Details)))

	id, err := h.ledgerService.PostTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to post transaction")
		return
	}

	logger.Info("Transaction posted successfully", slog.String("transaction_id", id))
	c.JSON(http.StatusCreated, dto.TransactionIDResponse{ID: id})
}

// updateTransaction godoc
// @Summary Replace a transaction
// @Description Reverses the existing transaction and posts the submitted one in its place, atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.TransactionRequest true "Replacement transaction"
// @Success 200 {object} dto.TransactionIDResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Duplicate voucher, unknown reference or insufficient stock"
// @Failure 500 {object} map[string]string "Update failed"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID), slog.String("voucher_no", req.VoucherNo))
	logger.Info("Received request to update transaction")

	newID, err := h.ledgerService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("new_transaction_id", newID))
	c.JSON(http.StatusOK, dto.TransactionIDResponse{ID: newID})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Reverses every balance, stock and tax effect of a transaction and removes it
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Reversal failed"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to delete transaction")

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction with its lines and, for Sales and Purchase, its tax register row
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	resp, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transaction headers newest first, optionally filtered by type
// @Tags transactions
// @Produce  json
// @Param   type query string false "Transaction type" Enums(Sales, Purchase, Payment, Receipt, Journal)
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}
