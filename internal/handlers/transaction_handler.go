package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "expenso/internal/errors"
	"expenso/internal/filter"
	"expenso/internal/models"
	"expenso/internal/pagination"
	"expenso/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the payload for creating or replacing a
// transaction. Updates replace the whole record, so the same payload is
// used for both.
type TransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description" binding:"required,max=500"`
	Category    string                 `json:"category" binding:"max=100"`
	Date        string                 `json:"date" binding:"omitempty,date_only"`
	Tags        models.TagList         `json:"tags"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	Type        models.TransactionType `json:"type"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Date        string                 `json:"date"`
	Tags        []string               `json:"tags"`
}

func (r TransactionRequest) toInput() services.TransactionInput {
	return services.TransactionInput{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Tags:        r.Tags,
	}
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new expense or income
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles the retrieval of the user's transactions
// @Summary     List transactions
// @Description Get a paginated, filtered list of the user's transactions, newest first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Param       search     query string false "Case-insensitive substring match on description"
// @Param       category   query string false "Exact category match"
// @Param       type       query string false "Transaction type (income or expense)"
// @Param       date_from  query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       date_to    query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       min_amount query string false "Inclusive minimum amount"
// @Param       max_amount query string false "Inclusive maximum amount"
// @Param       tags       query []string false "Tags; a record matching any passes"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var spec filter.Spec
	if err := c.ShouldBindQuery(&spec); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, spec, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportTransactions streams the filtered transaction list as CSV
// @Summary     Export transactions
// @Description Download the filtered transaction list as a CSV file, in list order
// @Tags        transactions
// @Accept      json
// @Produce     text/csv
// @Security    BearerAuth
// @Param       search     query string false "Case-insensitive substring match on description"
// @Param       category   query string false "Exact category match"
// @Param       type       query string false "Transaction type (income or expense)"
// @Param       date_from  query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       date_to    query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       min_amount query string false "Inclusive minimum amount"
// @Param       max_amount query string false "Inclusive maximum amount"
// @Param       tags       query []string false "Tags; a record matching any passes"
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var spec filter.Spec
	if err := c.ShouldBindQuery(&spec); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.transactionService.GetFilteredTransactions(userID, spec)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Type", "Category", "Description", "Amount", "Tags"})
	for _, t := range transactions {
		_ = w.Write([]string{
			t.Date,
			string(t.Type),
			t.Category,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			strings.Join(t.Tags, ";"),
		})
	}
	w.Flush()
}

// ImportRequest is a batch of loosely-shaped records to ingest.
type ImportRequest struct {
	Transactions []models.RawTransaction `json:"transactions" binding:"required"`
}

// ImportTransactions ingests records exported from another store
// @Summary     Import transactions
// @Description Bulk-import records; malformed fields are normalized to safe defaults rather than rejected
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ImportRequest true "Records to import"
// @Success     201 {object} MessageResponse "Import result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	count, err := h.transactionService.ImportTransactions(userID, req.Transactions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": count})
}

// GetFacets returns the distinct categories and tags of the user's records
// @Summary     Get filter facets
// @Description List the distinct categories and tags available for filtering
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Facets "Available categories and tags"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/facets [get]
func (h *TransactionHandler) GetFacets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	facets, err := h.transactionService.GetFacets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, facets)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ReplaceTransaction handles replacing an existing transaction
// @Summary     Replace transaction
// @Description Replace every editable field of an existing transaction; partial updates are not supported
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Replacement record"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) ReplaceTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.ReplaceTransaction(userID, c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
