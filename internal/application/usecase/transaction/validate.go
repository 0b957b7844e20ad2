// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// validateTransaction runs the shared validation sequence applied identically
// on create and update, short-circuiting at the first failure:
//
//  1. date must not be after now (UTC)
//  2. description must be non-empty after trimming (and within length bounds)
//  3. amount must be strictly positive
//  4. notes and type must be well-formed
//  5. the category reference must resolve
func validateTransaction(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType entity.TransactionType,
	categoryID int,
	notes string,
) error {
	if date.After(time.Now().UTC()) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDateInFuture,
			"transaction date cannot be in the future",
			domainerror.ErrTransactionDateInFuture,
		)
	}

	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}
	if len(description) > entity.MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if len(notes) > entity.MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", entity.MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	if !entity.IsValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// The category must exist at write time. The direction of the transaction
	// is not matched against the category type.
	if _, err := categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category with ID %d does not exist", categoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}

	return nil
}
