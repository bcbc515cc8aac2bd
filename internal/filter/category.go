package filter

import (
	"strings"

	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/validation"
)

// CategoryFilter keeps transactions whose category matches exactly, ignoring case.
type CategoryFilter struct {
	category string
}

// NewCategoryFilter creates a CategoryFilter. It fails with an error wrapping
// trackererror.ErrInvalidCategory when category is not an accepted category.
func NewCategoryFilter(category string) (*CategoryFilter, error) {
	if err := validation.ValidateCategory(category); err != nil {
		return nil, err
	}
	return &CategoryFilter{category: strings.TrimSpace(category)}, nil
}

// Category returns the category the filter matches.
func (f *CategoryFilter) Category() string {
	return f.category
}

func (f *CategoryFilter) Filter(txs []*models.Transaction) []*models.Transaction {
	target := strings.ToLower(f.category)
	return keep(txs, func(tx *models.Transaction) bool {
		return tx.Category() != "" && strings.ToLower(tx.Category()) == target
	})
}

func (f *CategoryFilter) Kind() Kind {
	return KindCategory
}

func (f *CategoryFilter) Name() string {
	return "category = " + f.category
}
