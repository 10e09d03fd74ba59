package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "monedero/internal/errors"
	"monedero/internal/models"
	"monedero/internal/pagination"
)

// categoryService handles category lifecycle business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// validateName trims and validates a category name.
func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if len(trimmed) > models.MaxCategoryNameLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must not exceed 50 characters")
	}
	return trimmed, nil
}

func validateCategoryType(categoryType models.CategoryType) error {
	switch categoryType {
	case models.CategoryTypeIncome, models.CategoryTypeExpense:
		return nil
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
}

// activeDuplicateExists checks whether another active category with the same
// (name, type) exists for the user. excludeID may be empty.
//
// This is the fast-path check; the store enforces the same rule with a
// partial unique index on (user_id, type, name) WHERE is_active, which is
// what actually closes the check-then-act race between concurrent requests.
func (s *categoryService) activeDuplicateExists(userID, name string, categoryType models.CategoryType, excludeID string) (bool, error) {
	query := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ? AND type = ? AND is_active = ?", userID, name, categoryType, true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// CreateCategory creates a new active category for the user.
func (s *categoryService) CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryType(categoryType); err != nil {
		return nil, err
	}

	dup, err := s.activeDuplicateExists(userID, trimmed, categoryType, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID:   userID,
		Name:     trimmed,
		Type:     categoryType,
		Icon:     icon,
		Color:    color,
		IsActive: true,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves the user's categories ordered by (type, name).
// Inactive rows are excluded unless the filter explicitly requests them.
func (s *categoryService) GetUserCategories(userID string, filter CategoryFilter, page pagination.PageRequest) ([]models.Category, error) {
	query := s.db.Model(&models.Category{}).Where("user_id = ?", userID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := query.Scopes(pagination.Paginate(page)).
		Order("type ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID for a specific user. Absent and
// foreign rows are indistinguishable in the result.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory applies a partial update. Name and type are re-validated
// exactly as in create when supplied, and any change that leaves the row
// active under a new (name, type) re-runs the duplicate check against all
// other active categories.
func (s *categoryService) UpdateCategory(userID, categoryID string, update CategoryUpdate) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	effectiveName := category.Name
	if update.Name != nil {
		trimmed, err := validateName(*update.Name)
		if err != nil {
			return nil, err
		}
		effectiveName = trimmed
		updates["name"] = trimmed
	}

	effectiveType := category.Type
	if update.Type != nil {
		if err := validateCategoryType(*update.Type); err != nil {
			return nil, err
		}
		effectiveType = *update.Type
		updates["type"] = *update.Type
	}

	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}

	effectiveActive := category.IsActive
	if update.IsActive != nil {
		effectiveActive = *update.IsActive
		updates["is_active"] = *update.IsActive
	}

	identityChanged := update.Name != nil || update.Type != nil
	activating := update.IsActive != nil && *update.IsActive && !category.IsActive
	if effectiveActive && (identityChanged || activating) {
		dup, err := s.activeDuplicateExists(userID, effectiveName, effectiveType, categoryID)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeactivateCategory soft-deletes a category and reports whether any
// transaction still references it. Usage only informs the returned flag;
// deactivation always succeeds for an owned active category, so deleting a
// category is never destructive and never blocked by references.
func (s *categoryService) DeactivateCategory(userID, categoryID string) (*models.Category, bool, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, false, err
	}

	if !category.IsActive {
		return nil, false, apperrors.ErrCategoryInactive
	}

	var usage int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&usage).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	wasInUse := usage > 0

	if err := s.db.Model(category).Update("is_active", false).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, wasInUse, nil
}

// ReactivateCategory flips a category back to active. The duplicate-active
// check is re-applied first, otherwise two categories with identical
// (name, type) could end up simultaneously active.
func (s *categoryService) ReactivateCategory(userID, categoryID string) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if category.IsActive {
		return category, nil
	}

	dup, err := s.activeDuplicateExists(userID, category.Name, category.Type, categoryID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperrors.ErrDuplicateCategory
	}

	if err := s.db.Model(category).Update("is_active", true).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}
