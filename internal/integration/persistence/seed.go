// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// seedCreatedAt is the fixed historical timestamp stamped on every predefined
// category, so repeated initializations produce identical rows.
var seedCreatedAt = time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)

// predefinedCategory describes one seeded category.
type predefinedCategory struct {
	name         string
	categoryType entity.CategoryType
}

// predefinedCategories is the fixed seed set: common income and expense
// categories plus one catch-all that accepts both directions.
var predefinedCategories = []predefinedCategory{
	{"Salary", entity.CategoryTypeIncome},
	{"Freelance", entity.CategoryTypeIncome},
	{"Investment Returns", entity.CategoryTypeIncome},
	{"Gifts", entity.CategoryTypeIncome},
	{"Other Income", entity.CategoryTypeIncome},
	{"Groceries", entity.CategoryTypeExpense},
	{"Dining Out", entity.CategoryTypeExpense},
	{"Transportation", entity.CategoryTypeExpense},
	{"Utilities", entity.CategoryTypeExpense},
	{"Rent/Mortgage", entity.CategoryTypeExpense},
	{"Healthcare", entity.CategoryTypeExpense},
	{"Insurance", entity.CategoryTypeExpense},
	{"Entertainment", entity.CategoryTypeExpense},
	{"Shopping", entity.CategoryTypeExpense},
	{"Education", entity.CategoryTypeExpense},
	{"Travel", entity.CategoryTypeExpense},
	{"Personal Care", entity.CategoryTypeExpense},
	{"Subscriptions", entity.CategoryTypeExpense},
	{"Gifts & Donations", entity.CategoryTypeExpense},
	{"Home Maintenance", entity.CategoryTypeExpense},
	{"Pet Care", entity.CategoryTypeExpense},
	{"Other Expenses", entity.CategoryTypeExpense},
	{"Miscellaneous", entity.CategoryTypeBoth},
}

// SeedPredefinedCategories inserts the predefined category set. Seeding is
// idempotent: categories already present (matched by name) are left untouched.
func SeedPredefinedCategories(ctx context.Context, db *gorm.DB) error {
	for _, seed := range predefinedCategories {
		categoryModel := model.CategoryModel{
			Name:         seed.name,
			Type:         string(seed.categoryType),
			IsPredefined: true,
			CreatedAt:    seedCreatedAt,
		}
		result := db.WithContext(ctx).
			Where("name = ?", seed.name).
			FirstOrCreate(&categoryModel)
		if result.Error != nil {
			return fmt.Errorf("failed to seed category %q: %w", seed.name, result.Error)
		}
	}
	return nil
}
