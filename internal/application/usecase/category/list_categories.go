// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves all categories: predefined categories first, then
// user-created ones, each group sorted by name (byte-wise, case-sensitive).
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].IsPredefined != categories[j].IsPredefined {
			return categories[i].IsPredefined
		}
		return categories[i].Name < categories[j].Name
	})

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
