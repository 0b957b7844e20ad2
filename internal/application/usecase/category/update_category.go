// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID int
	Name       string
	Type       entity.CategoryType
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	statsCache   adapter.StatsCache
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, statsCache adapter.StatsCache) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

// Execute performs the category update. Predefined categories are read-only.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category with ID %d not found", input.CategoryID),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsPredefined {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodePredefinedCategoryImmutable,
			"cannot update predefined categories",
			domainerror.ErrPredefinedCategoryImmutable,
		)
	}

	if err := validateCategoryFields(input.Name, input.Type); err != nil {
		return nil, err
	}

	if err := checkNameUnique(ctx, uc.categoryRepo, input.Name, category.ID); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Type = input.Type

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
