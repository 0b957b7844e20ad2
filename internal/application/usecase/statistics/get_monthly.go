// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetMonthlyStatisticsInput optionally restricts the report to one calendar year.
type GetMonthlyStatisticsInput struct {
	Year *int
}

// MonthlyStatistics represents aggregated totals for one calendar month.
type MonthlyStatistics struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	MonthName        string          `json:"month_name"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
}

// GetMonthlyStatisticsOutput represents per-month totals ordered by year
// descending, then month descending.
type GetMonthlyStatisticsOutput struct {
	Months []*MonthlyStatistics `json:"months"`
}

// GetMonthlyStatisticsUseCase groups transactions by calendar month.
type GetMonthlyStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
}

// NewGetMonthlyStatisticsUseCase creates a new GetMonthlyStatisticsUseCase instance.
func NewGetMonthlyStatisticsUseCase(
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatsCache,
) *GetMonthlyStatisticsUseCase {
	return &GetMonthlyStatisticsUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
	}
}

// Execute retrieves the (optionally year-restricted) transaction set and
// aggregates it per (year, month) pair in memory.
func (uc *GetMonthlyStatisticsUseCase) Execute(ctx context.Context, input GetMonthlyStatisticsInput) (*GetMonthlyStatisticsOutput, error) {
	key := "stats:monthly:-"
	if input.Year != nil {
		key = fmt.Sprintf("stats:monthly:%d", *input.Year)
	}
	var cached GetMonthlyStatisticsOutput
	if loadCached(ctx, uc.statsCache, key, &cached) {
		return &cached, nil
	}

	transactions, err := uc.transactionRepo.FindByYear(ctx, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	type yearMonth struct {
		year  int
		month int
	}
	groups := make(map[yearMonth]*MonthlyStatistics)
	var ordered []*MonthlyStatistics
	for _, txn := range transactions {
		date := txn.Date.UTC()
		gKey := yearMonth{year: date.Year(), month: int(date.Month())}
		group, ok := groups[gKey]
		if !ok {
			group = &MonthlyStatistics{
				Year: gKey.year,
				Month: gKey.month,
				// time.Month.String() yields locale-independent English names.
				MonthName:     time.Month(gKey.month).String(),
				TotalIncome:   decimal.Zero,
				TotalExpenses: decimal.Zero,
			}
			groups[gKey] = group
			ordered = append(ordered, group)
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			group.TotalIncome = group.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			group.TotalExpenses = group.TotalExpenses.Add(txn.Amount)
		}
		group.TransactionCount++
	}

	for _, group := range ordered {
		group.Balance = group.TotalIncome.Sub(group.TotalExpenses)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year > ordered[j].Year
		}
		return ordered[i].Month > ordered[j].Month
	})

	output := &GetMonthlyStatisticsOutput{
		Months: ordered,
	}

	storeCached(ctx, uc.statsCache, key, output)

	return output, nil
}
