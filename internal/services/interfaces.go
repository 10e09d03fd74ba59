package services

import (
	"monedero/internal/models"
	"monedero/internal/money"
	"monedero/internal/pagination"
	"monedero/internal/timeframe"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryFilter holds optional filter parameters for listing categories.
type CategoryFilter struct {
	Type            *models.CategoryType
	IncludeInactive bool
}

// CategoryUpdate is the fixed set of optional fields a category PATCH may
// change. Nil fields are left untouched.
type CategoryUpdate struct {
	Name     *string
	Type     *models.CategoryType
	Icon     *string
	Color    *string
	IsActive *bool
}

// CategoryServicer defines the contract for category lifecycle logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	GetUserCategories(userID string, filter CategoryFilter, page pagination.PageRequest) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID string, update CategoryUpdate) (*models.Category, error)
	DeactivateCategory(userID, categoryID string) (*models.Category, bool, error)
	ReactivateCategory(userID, categoryID string) (*models.Category, error)
}

// TransactionInput holds the fields required to create a transaction.
type TransactionInput struct {
	Amount      money.Cents
	Description string
	Date        string
	CategoryID  string
	Notes       string
}

// TransactionUpdate is the fixed set of optional fields a transaction PATCH
// may change. Nil fields are left untouched.
type TransactionUpdate struct {
	Amount      *money.Cents
	Description *string
	Date        *string
	CategoryID  *string
	Notes       *string
}

// TransactionServicer defines the contract for transaction mutation logic.
// All operations are scoped by transaction type so an income row is invisible
// through the expenses surface and vice versa.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, txType models.TransactionType, rng *timeframe.DateRange, page pagination.PageRequest) ([]models.Transaction, error)
	GetTransactionByID(userID string, txType models.TransactionType, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID string, txType models.TransactionType, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID string, txType models.TransactionType, transactionID string) error
}

// CategoryRef is the read-only category projection joined onto unified
// transactions for display.
type CategoryRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	IsActive bool   `json:"is_active"`
}

// UnifiedTransaction merges income and expense rows into one view tagged
// with type. Derived only, never persisted.
type UnifiedTransaction struct {
	ID          string                 `json:"id"`
	Type        models.TransactionType `json:"type"`
	Amount      money.Cents            `json:"amount"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Category    CategoryRef            `json:"category"`
	Notes       string                 `json:"notes,omitempty"`
}

// Summary is the aggregation result for a user over an optional date range.
type Summary struct {
	Transactions       []UnifiedTransaction   `json:"transactions"`
	TotalIncome        money.Cents            `json:"total_income"`
	TotalExpenses      money.Cents            `json:"total_expenses"`
	Balance            money.Cents            `json:"balance"`
	ExpensesByCategory map[string]money.Cents `json:"expenses_by_category"`
}

// SummaryServicer defines the contract for transaction aggregation.
type SummaryServicer interface {
	Aggregate(userID string, rng *timeframe.DateRange) (*Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
