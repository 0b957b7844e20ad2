// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

const (
	// minPageNumber is the floor applied to non-positive page numbers.
	minPageNumber = 1
	// minPageSize is the floor applied to non-positive page sizes. The HTTP
	// adapter defaults an absent pageSize to 20; the floor here is
	// intentionally 10, so an explicit non-positive value and an absent one
	// land on different sizes.
	minPageSize = 10
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	PageNumber int
	PageSize   int
}

// PaginationOutput represents pagination metadata in the output.
type PaginationOutput struct {
	PageNumber  int
	PageSize    int
	TotalCount  int64
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles paginated transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute retrieves one page of transactions ordered by date descending, then
// ID descending. Inputs are coerced, never rejected.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	pageNumber := input.PageNumber
	if pageNumber < minPageNumber {
		pageNumber = minPageNumber
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = minPageSize
	}

	offset := (pageNumber - 1) * pageSize
	transactions, totalCount, err := uc.transactionRepo.FindPage(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	// Resolve all referenced categories once for the page instead of one
	// lookup per record.
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}
	byID := make(map[int]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, txn := range transactions {
		outputs[i] = newTransactionOutput(txn, byID[txn.CategoryID])
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
		Pagination: PaginationOutput{
			PageNumber:  pageNumber,
			PageSize:    pageSize,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
			HasNext:     pageNumber < totalPages,
			HasPrevious: pageNumber > 1,
		},
	}, nil
}
