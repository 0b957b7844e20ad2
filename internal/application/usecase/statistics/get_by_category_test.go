// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestGetCategoryStatisticsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	categories := &fakeCategoryRepository{categories: []*entity.Category{
		{ID: 1, Name: "Salary", Type: entity.CategoryTypeIncome},
		{ID: 2, Name: "Groceries", Type: entity.CategoryTypeExpense},
		{ID: 3, Name: "Dining Out", Type: entity.CategoryTypeExpense},
	}}

	t.Run("groups by category ordered by total descending", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense(1, day(2025, time.January, 5), 50, 2),
			expense(2, day(2025, time.January, 6), 70, 2),
			income(3, day(2025, time.January, 7), 3000, 1),
			expense(4, day(2025, time.January, 8), 40, 3),
		}}
		uc := NewGetCategoryStatisticsUseCase(repo, categories, nil)

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Categories) != 3 {
			t.Fatalf("expected 3 groups, got %d", len(output.Categories))
		}
		if output.Categories[0].CategoryName != "Salary" {
			t.Errorf("expected 'Salary' first, got %s", output.Categories[0].CategoryName)
		}
		if output.Categories[1].CategoryName != "Groceries" {
			t.Errorf("expected 'Groceries' second, got %s", output.Categories[1].CategoryName)
		}
		if !output.Categories[1].TotalAmount.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected Groceries total 120, got %s", output.Categories[1].TotalAmount)
		}
		if output.Categories[1].TransactionCount != 2 {
			t.Errorf("expected 2 Groceries transactions, got %d", output.Categories[1].TransactionCount)
		}
	})

	t.Run("sums income and expense amounts together within a group", func(t *testing.T) {
		// Category 1 receives one income and one expense; the total is the
		// sum of both amounts, not the net.
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 5), 100, 1),
			expense(2, day(2025, time.January, 6), 40, 1),
		}}
		uc := NewGetCategoryStatisticsUseCase(repo, categories, nil)

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 group, got %d", len(output.Categories))
		}
		if !output.Categories[0].TotalAmount.Equal(decimal.NewFromInt(140)) {
			t.Errorf("expected total 140, got %s", output.Categories[0].TotalAmount)
		}
	})

	t.Run("grand total matches the overall report", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 5), 3000, 1),
			expense(2, day(2025, time.January, 6), 120, 2),
			expense(3, day(2025, time.January, 7), 80, 3),
		}}
		uc := NewGetCategoryStatisticsUseCase(repo, categories, nil)

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		sum := decimal.Zero
		for _, group := range output.Categories {
			sum = sum.Add(group.TotalAmount)
		}
		if !sum.Equal(decimal.NewFromInt(3200)) {
			t.Errorf("expected grand total 3200, got %s", sum)
		}
	})

	t.Run("uses Unknown and both for unresolvable categories", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense(1, day(2025, time.January, 5), 30, 99),
		}}
		uc := NewGetCategoryStatisticsUseCase(repo, categories, nil)

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 group, got %d", len(output.Categories))
		}
		group := output.Categories[0]
		if group.CategoryName != UnknownCategoryName {
			t.Errorf("expected name %q, got %q", UnknownCategoryName, group.CategoryName)
		}
		if group.Type != entity.CategoryTypeBoth {
			t.Errorf("expected type 'both', got %s", group.Type)
		}
	})

	t.Run("applies the date range filter", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense(1, day(2025, time.January, 5), 50, 2),
			expense(2, day(2025, time.March, 5), 70, 2),
		}}
		uc := NewGetCategoryStatisticsUseCase(repo, categories, nil)

		start := day(2025, time.February, 1)
		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{StartDate: &start})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 group, got %d", len(output.Categories))
		}
		if !output.Categories[0].TotalAmount.Equal(decimal.NewFromInt(70)) {
			t.Errorf("expected total 70, got %s", output.Categories[0].TotalAmount)
		}
	})

	t.Run("returns an empty report with no transactions", func(t *testing.T) {
		uc := NewGetCategoryStatisticsUseCase(&fakeTransactionRepository{}, categories, nil)

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected no groups, got %d", len(output.Categories))
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense(1, day(2025, time.January, 5), 50, 2),
		}}
		cache := newFakeStatsCache()
		uc := NewGetCategoryStatisticsUseCase(repo, categories, cache)

		if _, err := uc.Execute(ctx, GetCategoryStatisticsInput{}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		repo.transactions = nil

		output, err := uc.Execute(ctx, GetCategoryStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Categories) != 1 {
			t.Errorf("expected cached report with 1 group, got %d", len(output.Categories))
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
	})
}
