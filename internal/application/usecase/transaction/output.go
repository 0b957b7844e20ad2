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

// UnknownCategoryName is the placeholder used when a transaction's category
// can no longer be resolved.
const UnknownCategoryName = "Unknown"

// TransactionOutput represents a single transaction enriched with its
// category's display name resolved at read time.
type TransactionOutput struct {
	ID           int
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Type         entity.TransactionType
	CategoryID   int
	CategoryName string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// newTransactionOutput builds a TransactionOutput, substituting a placeholder
// name when the category is gone.
func newTransactionOutput(txn *entity.Transaction, category *entity.Category) *TransactionOutput {
	name := UnknownCategoryName
	if category != nil {
		name = category.Name
	}

	return &TransactionOutput{
		ID:           txn.ID,
		Date:         txn.Date,
		Description:  txn.Description,
		Amount:       txn.Amount,
		Type:         txn.Type,
		CategoryID:   txn.CategoryID,
		CategoryName: name,
		Notes:        txn.Notes,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

// resolveCategory looks up a transaction's category, mapping "not found" to a
// nil category instead of an error.
func resolveCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, categoryID int) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}
