// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestGetOverallStatisticsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates income, expenses and balance", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 10), 1000, 1),
			expense(2, day(2025, time.January, 15), 250, 2),
			expense(3, day(2025, time.February, 3), 150, 2),
		}}
		uc := NewGetOverallStatisticsUseCase(repo, nil)

		output, err := uc.Execute(ctx, GetOverallStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total income 1000, got %s", output.TotalIncome)
		}
		if !output.TotalExpenses.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected total expenses 400, got %s", output.TotalExpenses)
		}
		if !output.Balance.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected balance 600, got %s", output.Balance)
		}
		if output.TransactionCount != 3 {
			t.Errorf("expected 3 transactions, got %d", output.TransactionCount)
		}
	})

	t.Run("returns zeros for an empty store", func(t *testing.T) {
		uc := NewGetOverallStatisticsUseCase(&fakeTransactionRepository{}, nil)

		output, err := uc.Execute(ctx, GetOverallStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Balance.IsZero() || output.TransactionCount != 0 {
			t.Errorf("expected zero output, got balance %s count %d", output.Balance, output.TransactionCount)
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 1), 100, 1),
			income(2, day(2025, time.January, 31), 200, 1),
			income(3, day(2025, time.February, 1), 400, 1),
		}}
		uc := NewGetOverallStatisticsUseCase(repo, nil)

		start := day(2025, time.January, 1)
		end := day(2025, time.January, 31)
		output, err := uc.Execute(ctx, GetOverallStatisticsInput{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.TransactionCount != 2 {
			t.Errorf("expected 2 transactions in range, got %d", output.TransactionCount)
		}
		if !output.TotalIncome.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected income 300, got %s", output.TotalIncome)
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 10), 500, 1),
		}}
		cache := newFakeStatsCache()
		uc := NewGetOverallStatisticsUseCase(repo, cache)

		first, err := uc.Execute(ctx, GetOverallStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected 1 cache write, got %d", cache.sets)
		}

		// Mutate the underlying store; the cached report must win.
		repo.transactions = append(repo.transactions, income(2, day(2025, time.January, 11), 999, 1))

		second, err := uc.Execute(ctx, GetOverallStatisticsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !second.TotalIncome.Equal(first.TotalIncome) {
			t.Errorf("expected cached income %s, got %s", first.TotalIncome, second.TotalIncome)
		}
		if cache.sets != 1 {
			t.Errorf("expected no second cache write, got %d", cache.sets)
		}
	})

	t.Run("different date filters use different cache keys", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			income(1, day(2025, time.January, 10), 500, 1),
			income(2, day(2025, time.March, 10), 700, 1),
		}}
		cache := newFakeStatsCache()
		uc := NewGetOverallStatisticsUseCase(repo, cache)

		if _, err := uc.Execute(ctx, GetOverallStatisticsInput{}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		start := day(2025, time.February, 1)
		filtered, err := uc.Execute(ctx, GetOverallStatisticsInput{StartDate: &start})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !filtered.TotalIncome.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected filtered income 700, got %s", filtered.TotalIncome)
		}
		if cache.sets != 2 {
			t.Errorf("expected 2 distinct cache entries, got %d writes", cache.sets)
		}
	})
}
