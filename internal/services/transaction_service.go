package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "monedero/internal/errors"
	"monedero/internal/models"
	"monedero/internal/pagination"
	"monedero/internal/timeframe"
)

// transactionService handles transaction mutation business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// checkCategory verifies that the referenced category exists and belongs to
// the user. The category may be inactive; only new-entry forms restrict
// themselves to the active set.
func (s *transactionService) checkCategory(userID, categoryID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category not found")
	}
	return nil
}

// CreateTransaction creates a new income or expense entry for the user.
// Amount must be positive; date must be a valid YYYY-MM-DD; the category
// must exist and belong to the user.
func (s *transactionService) CreateTransaction(userID string, txType models.TransactionType, input TransactionInput) (*models.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if !timeframe.ValidDate(input.Date) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a valid YYYY-MM-DD date")
	}
	if input.CategoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required")
	}
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}

	categoryID := input.CategoryID
	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  &categoryID,
		Type:        txType,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		Notes:       input.Notes,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Preload("Category").First(transaction, "id = ?", transaction.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions lists the user's transactions of one type, most recent
// first, optionally bounded by an inclusive date range.
func (s *transactionService) GetUserTransactions(userID string, txType models.TransactionType, rng *timeframe.DateRange, page pagination.PageRequest) ([]models.Transaction, error) {
	query := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, txType)
	if rng != nil {
		query = query.Where("date >= ? AND date <= ?", rng.From, rng.To)
	}

	var transactions []models.Transaction
	if err := query.Scopes(pagination.Paginate(page)).
		Preload("Category").
		Order("date DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user and
// type. Absent and foreign rows return the same NotFound.
func (s *transactionService) GetTransactionByID(userID string, txType models.TransactionType, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ? AND type = ?", transactionID, userID, txType).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update after an ownership check. Only
// supplied fields change; supplied fields are validated exactly as in create.
func (s *transactionService) UpdateTransaction(userID string, txType models.TransactionType, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, txType, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["amount"] = *update.Amount
	}
	if update.Date != nil {
		if !timeframe.ValidDate(*update.Date) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a valid YYYY-MM-DD date")
		}
		updates["date"] = *update.Date
	}
	if update.CategoryID != nil {
		if err := s.checkCategory(userID, *update.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *update.CategoryID
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Preload("Category").First(transaction, "id = ?", transaction.ID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction hard-deletes a transaction after an ownership check.
// Transactions are leaf records with no downstream references, so unlike
// categories there is no usage check and no soft delete.
func (s *transactionService) DeleteTransaction(userID string, txType models.TransactionType, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, txType, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
