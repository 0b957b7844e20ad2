// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID int
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Type          entity.TransactionType
	CategoryID    int
	Notes         string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	statsCache      adapter.StatsCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	statsCache adapter.StatsCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		statsCache:      statsCache,
	}
}

// Execute performs the transaction update. The full validation sequence is
// re-run against the new values, unchanged fields included.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				fmt.Sprintf("transaction with ID %d not found", input.TransactionID),
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	err = validateTransaction(ctx, uc.categoryRepo,
		input.Date, input.Description, input.Amount, input.Type, input.CategoryID, input.Notes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn.Date = input.Date
	txn.Description = input.Description
	txn.Amount = input.Amount
	txn.Type = input.Type
	txn.CategoryID = input.CategoryID
	txn.Notes = input.Notes
	txn.UpdatedAt = &now

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	category, err := resolveCategory(ctx, uc.categoryRepo, txn.CategoryID)
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(txn, category),
	}, nil
}
