// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  int
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	statsCache      adapter.StatsCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	statsCache adapter.StatsCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		statsCache:      statsCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	err := validateTransaction(ctx, uc.categoryRepo,
		input.Date, input.Description, input.Amount, input.Type, input.CategoryID, input.Notes)
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Date,
		input.Description,
		input.Amount,
		input.Type,
		input.CategoryID,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	category, err := resolveCategory(ctx, uc.categoryRepo, txn.CategoryID)
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction: newTransactionOutput(txn, category),
	}, nil
}

// invalidateStats drops cached statistics after a mutation. Cache failures are
// not fatal: the next statistics read simply recomputes.
func invalidateStats(ctx context.Context, cache adapter.StatsCache) {
	if cache == nil {
		return
	}
	_ = cache.Invalidate(ctx)
}
