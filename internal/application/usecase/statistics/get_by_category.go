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

// UnknownCategoryName is the placeholder emitted for transactions whose
// category no longer exists.
const UnknownCategoryName = "Unknown"

// GetCategoryStatisticsInput represents the optional date filter for
// per-category statistics. Both bounds are inclusive.
type GetCategoryStatisticsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryStatistics represents aggregated totals for one category.
//
// TotalAmount sums income and expense amounts together rather than netting
// them; a category used in both directions reports its gross activity.
type CategoryStatistics struct {
	CategoryID       int                 `json:"category_id"`
	CategoryName     string              `json:"category_name"`
	Type             entity.CategoryType `json:"type"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	TransactionCount int                 `json:"transaction_count"`
}

// GetCategoryStatisticsOutput represents per-category totals ordered by
// descending total amount.
type GetCategoryStatisticsOutput struct {
	Categories []*CategoryStatistics `json:"categories"`
}

// GetCategoryStatisticsUseCase groups the filtered transaction set by category.
type GetCategoryStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	statsCache      adapter.StatsCache
}

// NewGetCategoryStatisticsUseCase creates a new GetCategoryStatisticsUseCase instance.
func NewGetCategoryStatisticsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	statsCache adapter.StatsCache,
) *GetCategoryStatisticsUseCase {
	return &GetCategoryStatisticsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		statsCache:      statsCache,
	}
}

// Execute retrieves the filtered transaction set, groups it by category ID and
// aggregates each group in memory. Groups are ordered by total amount
// descending; ties keep the first-seen order from the grouping pass.
func (uc *GetCategoryStatisticsUseCase) Execute(ctx context.Context, input GetCategoryStatisticsInput) (*GetCategoryStatisticsOutput, error) {
	key := dateRangeKey("by-category", input.StartDate, input.EndDate)
	var cached GetCategoryStatisticsOutput
	if loadCached(ctx, uc.statsCache, key, &cached) {
		return &cached, nil
	}

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[int]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	// Group in first-seen order so ties stay deterministic after sorting.
	groups := make(map[int]*CategoryStatistics)
	var ordered []*CategoryStatistics
	for _, txn := range transactions {
		group, ok := groups[txn.CategoryID]
		if !ok {
			group = &CategoryStatistics{
				CategoryID:   txn.CategoryID,
				CategoryName: UnknownCategoryName,
				Type:         entity.CategoryTypeBoth,
				TotalAmount:  decimal.Zero,
			}
			if category, found := byID[txn.CategoryID]; found {
				group.CategoryName = category.Name
				group.Type = category.Type
			}
			groups[txn.CategoryID] = group
			ordered = append(ordered, group)
		}
		group.TotalAmount = group.TotalAmount.Add(txn.Amount)
		group.TransactionCount++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalAmount.GreaterThan(ordered[j].TotalAmount)
	})

	output := &GetCategoryStatisticsOutput{
		Categories: ordered,
	}

	storeCached(ctx, uc.statsCache, key, output)

	return output, nil
}
