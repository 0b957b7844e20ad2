// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[int]*entity.Category
	nextID     int
}

func newFakeCategoryRepository(seed ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{
		categories: make(map[int]*entity.Category),
		nextID:     1,
	}
	for _, c := range seed {
		copied := *c
		repo.categories[copied.ID] = &copied
		if copied.ID >= repo.nextID {
			repo.nextID = copied.ID + 1
		}
	}
	return repo
}

func (r *fakeCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.categories[id]; ok {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepository) FindByID(ctx context.Context, id int) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
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
	category.ID = r.nextID
	r.nextID++
	copied := *category
	r.categories[copied.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	copied := *category
	r.categories[copied.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Delete(ctx context.Context, id int) error {
	delete(r.categories, id)
	return nil
}

// fakeTransactionRepository is an in-memory TransactionRepository for tests.
// Listing methods return transactions ordered by date descending, then ID
// descending, matching the persistence contract.
type fakeTransactionRepository struct {
	transactions map[int]*entity.Transaction
	nextID       int
}

func newFakeTransactionRepository(seed ...*entity.Transaction) *fakeTransactionRepository {
	repo := &fakeTransactionRepository{
		transactions: make(map[int]*entity.Transaction),
		nextID:       1,
	}
	for _, txn := range seed {
		copied := *txn
		repo.transactions[copied.ID] = &copied
		if copied.ID >= repo.nextID {
			repo.nextID = copied.ID + 1
		}
	}
	return repo
}

func (r *fakeTransactionRepository) ordered() []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(r.transactions))
	for _, txn := range r.transactions {
		copied := *txn
		out = append(out, &copied)
	}
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
	txn, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
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
	transaction.ID = r.nextID
	r.nextID++
	copied := *transaction
	r.transactions[copied.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions[copied.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) Delete(ctx context.Context, id int) error {
	delete(r.transactions, id)
	return nil
}

// fakeStatsCache records invalidations so tests can assert mutations drop
// cached statistics.
type fakeStatsCache struct {
	entries       map[string][]byte
	invalidations int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string][]byte)}
}

func (c *fakeStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

func (c *fakeStatsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.entries[key] = payload
	return nil
}

func (c *fakeStatsCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	c.invalidations++
	return nil
}

func testCategory(id int, name string) *entity.Category {
	return &entity.Category{
		ID:        id,
		Name:      name,
		Type:      entity.CategoryTypeBoth,
		CreatedAt: time.Now().UTC(),
	}
}
