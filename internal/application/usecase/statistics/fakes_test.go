// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fakeTransactionRepository serves a fixed transaction set ordered by date
// descending, then ID descending, matching the persistence contract.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepository) ordered() []*entity.Transaction {
	out := make([]*entity.Transaction, len(r.transactions))
	copy(out, r.transactions)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *fakeTransactionRepository) FindPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, int64, error) {
	all := r.ordered()
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeTransactionRepository) FindByID(ctx context.Context, id int) (*entity.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) FindByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.ordered() {
		if start != nil && txn.Date.Before(*start) {
			continue
		}
		if end != nil && txn.Date.After(*end) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

func (r *fakeTransactionRepository) FindByYear(ctx context.Context, year *int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.ordered() {
		if year != nil && txn.Date.UTC().Year() != *year {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

func (r *fakeTransactionRepository) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	for _, txn := range r.transactions {
		if txn.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) Delete(ctx context.Context, id int) error {
	return nil
}

// fakeCategoryRepository serves a fixed category set.
type fakeCategoryRepository struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepository) FindByID(ctx context.Context, id int) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	for _, c := range r.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return nil
}

func (r *fakeCategoryRepository) Delete(ctx context.Context, id int) error {
	return nil
}

// fakeStatsCache is an in-memory StatsCache tracking hits and writes.
type fakeStatsCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string][]byte)}
}

func (c *fakeStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.entries[key], nil
}

func (c *fakeStatsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.sets++
	c.entries[key] = payload
	return nil
}

func (c *fakeStatsCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

func income(id int, date time.Time, amount float64, categoryID int) *entity.Transaction {
	return &entity.Transaction{
		ID:         id,
		Date:       date,
		Amount:     decimal.NewFromFloat(amount),
		Type:       entity.TransactionTypeIncome,
		CategoryID: categoryID,
	}
}

func expense(id int, date time.Time, amount float64, categoryID int) *entity.Transaction {
	return &entity.Transaction{
		ID:         id,
		Date:       date,
		Amount:     decimal.NewFromFloat(amount),
		Type:       entity.TransactionTypeExpense,
		CategoryID: categoryID,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
