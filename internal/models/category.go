package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// MaxCategoryNameLength bounds trimmed category names.
const MaxCategoryNameLength = 50

// Category represents a transaction category. Categories are never hard
// deleted: deactivation flips IsActive so historical transactions keep a
// resolvable reference. Name/type uniqueness per user is scoped to active
// rows only, which lets an inactive "Food" coexist with a fresh active one.
type Category struct {
	Base
	UserID   string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string       `gorm:"not null" json:"name"`
	Type     CategoryType `gorm:"not null" json:"type"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	IsActive bool         `gorm:"default:true;index" json:"is_active"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
