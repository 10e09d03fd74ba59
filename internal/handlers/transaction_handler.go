package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monedero/internal/errors"
	"monedero/internal/models"
	"monedero/internal/money"
	"monedero/internal/pagination"
	"monedero/internal/services"
)

// TransactionHandler serves the /income and /expenses surfaces. Both are
// type-filtered views over the same transaction store, so every route pair
// shares one implementation parameterized by transaction type.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating an
// income or expense entry. Amount accepts a JSON number or decimal string
// and is held in exact cents.
type CreateTransactionRequest struct {
	Amount      money.Cents `json:"amount" binding:"required"`
	Description string      `json:"description" binding:"max=500"`
	Date        string      `json:"date" binding:"required,ymd_date"`
	CategoryID  string      `json:"category_id" binding:"required,uuid"`
	Notes       string      `json:"notes" binding:"max=1000"`
}

// UpdateTransactionRequest represents the request payload for a partial
// transaction update. Absent fields are left untouched.
type UpdateTransactionRequest struct {
	Amount      *money.Cents `json:"amount"`
	Description *string      `json:"description" binding:"omitempty,max=500"`
	Date        *string      `json:"date" binding:"omitempty,ymd_date"`
	CategoryID  *string      `json:"category_id" binding:"omitempty,uuid"`
	Notes       *string      `json:"notes" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	CategoryID  *string                `json:"category_id,omitempty"`
	Type        models.TransactionType `json:"type"`
	Amount      money.Cents            `json:"amount"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Notes       string                 `json:"notes,omitempty"`
}

// ListIncome handles listing income entries
// @Summary     List income
// @Description List the user's income entries, most recent first, optionally bounded by from/to dates
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (YYYY-MM-DD, requires to)"
// @Param       to query string false "Range end (YYYY-MM-DD, requires from)"
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Entries per page (default 500, max 1000); responses never exceed one page"
// @Success     200 {array} TransactionResponse "List of income entries"
// @Failure     400 {object} ErrorResponse "Mismatched from/to or bad date format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *TransactionHandler) ListIncome(c *gin.Context) {
	h.list(c, models.TransactionTypeIncome)
}

// ListExpenses handles listing expense entries
// @Summary     List expenses
// @Description List the user's expense entries, most recent first, optionally bounded by from/to dates
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (YYYY-MM-DD, requires to)"
// @Param       to query string false "Range end (YYYY-MM-DD, requires from)"
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Entries per page (default 500, max 1000); responses never exceed one page"
// @Success     200 {array} TransactionResponse "List of expense entries"
// @Failure     400 {object} ErrorResponse "Mismatched from/to or bad date format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *TransactionHandler) ListExpenses(c *gin.Context) {
	h.list(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) list(c *gin.Context, txType models.TransactionType) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rng, err := parseRangeQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID, txType, rng, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateIncome handles the creation of an income entry
// @Summary     Create income
// @Description Record a new income entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Income details"
// @Success     201 {object} TransactionResponse "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *TransactionHandler) CreateIncome(c *gin.Context) {
	h.create(c, models.TransactionTypeIncome)
}

// CreateExpense handles the creation of an expense entry
// @Summary     Create expense
// @Description Record a new expense entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Expense details"
// @Success     201 {object} TransactionResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *TransactionHandler) CreateExpense(c *gin.Context) {
	h.create(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) create(c *gin.Context, txType models.TransactionType) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, txType, services.TransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": txType, "amount": transaction.Amount.String(), "date": transaction.Date})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateIncome handles updating an income entry
// @Summary     Update income
// @Description Apply a partial update to an income entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Param       request body UpdateTransactionRequest true "Updated fields"
// @Success     200 {object} TransactionResponse "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [patch]
func (h *TransactionHandler) UpdateIncome(c *gin.Context) {
	h.update(c, models.TransactionTypeIncome)
}

// UpdateExpense handles updating an expense entry
// @Summary     Update expense
// @Description Apply a partial update to an expense entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Param       request body UpdateTransactionRequest true "Updated fields"
// @Success     200 {object} TransactionResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [patch]
func (h *TransactionHandler) UpdateExpense(c *gin.Context) {
	h.update(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) update(c *gin.Context, txType models.TransactionType) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, txType, c.Param("id"), services.TransactionUpdate{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteIncome handles deleting an income entry
// @Summary     Delete income
// @Description Permanently delete an income entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *TransactionHandler) DeleteIncome(c *gin.Context) {
	h.delete(c, models.TransactionTypeIncome)
}

// DeleteExpense handles deleting an expense entry
// @Summary     Delete expense
// @Description Permanently delete an expense entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *TransactionHandler) DeleteExpense(c *gin.Context) {
	h.delete(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) delete(c *gin.Context, txType models.TransactionType) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID := c.Param("id")
	if err := h.transactionService.DeleteTransaction(userID, txType, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
