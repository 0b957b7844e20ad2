// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetOverallStatisticsInput represents the optional date filter for overall
// statistics. Both bounds are inclusive.
type GetOverallStatisticsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// GetOverallStatisticsOutput represents aggregated totals over the filtered
// transaction set.
type GetOverallStatisticsOutput struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
}

// GetOverallStatisticsUseCase computes income/expense totals and balance.
type GetOverallStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
}

// NewGetOverallStatisticsUseCase creates a new GetOverallStatisticsUseCase instance.
func NewGetOverallStatisticsUseCase(
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatsCache,
) *GetOverallStatisticsUseCase {
	return &GetOverallStatisticsUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
	}
}

// Execute retrieves the filtered transaction set and aggregates it in memory.
func (uc *GetOverallStatisticsUseCase) Execute(ctx context.Context, input GetOverallStatisticsInput) (*GetOverallStatisticsOutput, error) {
	key := dateRangeKey("overall", input.StartDate, input.EndDate)
	var cached GetOverallStatisticsOutput
	if loadCached(ctx, uc.statsCache, key, &cached) {
		return &cached, nil
	}

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(txn.Amount)
		}
	}

	output := &GetOverallStatisticsOutput{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Balance:          totalIncome.Sub(totalExpenses),
		TransactionCount: len(transactions),
	}

	storeCached(ctx, uc.statsCache, key, output)

	return output, nil
}
