// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// FindAll retrieves all categories, in no particular order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID. Returns
	// domainerror.ErrCategoryNotFound when the ID does not resolve.
	FindByID(ctx context.Context, id int) (*entity.Category, error)

	// ExistsByName checks case-insensitively whether a category with the given
	// name exists. When excludeID is non-zero, the category with that ID is
	// ignored (used when updating a category in place).
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)

	// Create inserts a new category and assigns its ID.
	Create(ctx context.Context, category *entity.Category) error

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id int) error
}
