// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
//
// All listing methods return transactions ordered by date descending, then ID
// descending, so that callers observe a stable, deterministic order.
type TransactionRepository interface {
	// FindPage retrieves one page of transactions along with the total number
	// of transactions in the store.
	FindPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, int64, error)

	// FindByID retrieves a transaction by its ID. Returns
	// domainerror.ErrTransactionNotFound when the ID does not resolve.
	FindByID(ctx context.Context, id int) (*entity.Transaction, error)

	// FindByDateRange retrieves all transactions with date >= start and
	// date <= end. Either bound may be nil to leave that side open.
	FindByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Transaction, error)

	// FindByYear retrieves all transactions whose date falls in the given
	// calendar year, or every transaction when year is nil.
	FindByYear(ctx context.Context, year *int) ([]*entity.Transaction, error)

	// CountByCategory returns the number of transactions referencing the category.
	CountByCategory(ctx context.Context, categoryID int) (int64, error)

	// Create inserts a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id int) error
}
