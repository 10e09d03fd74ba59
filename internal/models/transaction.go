package models

import "monedero/internal/money"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry. Income and
// expenses share one table split by Type; the /income and /expenses surfaces
// are type-filtered views over it.
//
// CategoryID is a back-reference, not ownership: the category may be
// deactivated later without invalidating the row, and the join keeps
// resolving for display.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Amount      money.Cents     `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Notes       string          `json:"notes,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
