// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Type entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	statsCache   adapter.StatsCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, statsCache adapter.StatsCache) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

// Execute performs the category creation. Created categories are always
// user-defined; predefined categories only come from the initial seed.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := validateCategoryFields(input.Name, input.Type); err != nil {
		return nil, err
	}

	if err := checkNameUnique(ctx, uc.categoryRepo, input.Name, 0); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.Name, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateCategoryFields checks name and type constraints shared by create and update.
func validateCategoryFields(name string, categoryType entity.CategoryType) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(name) > entity.MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", entity.MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if !entity.IsValidCategoryType(categoryType) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income', 'expense' or 'both'",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}

// checkNameUnique enforces case-insensitive name uniqueness across all
// categories, predefined ones included. excludeID skips the category being
// updated.
func checkNameUnique(ctx context.Context, repo adapter.CategoryRepository, name string, excludeID int) error {
	exists, err := repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category with name '%s' already exists", name),
			domainerror.ErrCategoryNameExists,
		)
	}
	return nil
}

// invalidateStats drops cached statistics after a mutation. Cache failures are
// not fatal: the next statistics read simply recomputes.
func invalidateStats(ctx context.Context, cache adapter.StatsCache) {
	if cache == nil {
		return
	}
	_ = cache.Invalidate(ctx)
}
