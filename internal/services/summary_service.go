package services

import (
	"gorm.io/gorm"

	apperrors "monedero/internal/errors"
	"monedero/internal/models"
	"monedero/internal/money"
	"monedero/internal/timeframe"
)

// uncategorized is the placeholder shown for transactions whose category
// cannot be resolved; aggregation never fails on a dangling reference.
var uncategorized = CategoryRef{
	Name:  "Uncategorized",
	Icon:  "📦",
	Color: "#6B7280",
}

// summaryService computes unified transaction views and aggregate totals.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// Aggregate merges the user's income and expense rows into one unified list
// sorted by date descending (IDs are time-ordered, so the id tiebreak keeps
// same-day rows in arrival order), and reduces it into exact cent totals and
// a per-category expense breakdown.
func (s *summaryService) Aggregate(userID string, rng *timeframe.DateRange) (*Summary, error) {
	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if rng != nil {
		query = query.Where("date >= ? AND date <= ?", rng.From, rng.To)
	}

	var transactions []models.Transaction
	if err := query.Preload("Category").
		Order("date DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &Summary{
		Transactions:       make([]UnifiedTransaction, 0, len(transactions)),
		ExpensesByCategory: make(map[string]money.Cents),
	}

	for _, tx := range transactions {
		category := uncategorized
		if tx.Category != nil {
			category = CategoryRef{
				ID:       tx.Category.ID,
				Name:     tx.Category.Name,
				Icon:     tx.Category.Icon,
				Color:    tx.Category.Color,
				IsActive: tx.Category.IsActive,
			}
		}

		summary.Transactions = append(summary.Transactions, UnifiedTransaction{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Date:        tx.Date,
			Category:    category,
			Notes:       tx.Notes,
		})

		switch tx.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome += tx.Amount
		case models.TransactionTypeExpense:
			summary.TotalExpenses += tx.Amount
			// Zero-expense categories are omitted, not zero-valued.
			summary.ExpensesByCategory[category.Name] += tx.Amount
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}
