// Package category contains category-related use cases.
package category

import (
	"context"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[int]*entity.Category
	nextID     int
	failWith   error
}

func newFakeCategoryRepository(seed ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{
		categories: make(map[int]*entity.Category),
		nextID:     1,
	}
	for _, c := range seed {
		copied := *c
		if copied.ID == 0 {
			copied.ID = repo.nextID
		}
		repo.categories[copied.ID] = &copied
		if copied.ID >= repo.nextID {
			repo.nextID = copied.ID + 1
		}
	}
	return repo
}

func (r *fakeCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	// Iterate in ID order so tests see a deterministic input.
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
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, c := range r.categories {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	category.ID = r.nextID
	r.nextID++
	copied := *category
	r.categories[copied.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	copied := *category
	r.categories[copied.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Delete(ctx context.Context, id int) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.categories, id)
	return nil
}

// fakeTransactionCounter implements only the TransactionRepository behavior
// needed by category deletion.
type fakeTransactionCounter struct {
	counts map[int]int64
}

func (r *fakeTransactionCounter) FindPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *fakeTransactionCounter) FindByID(ctx context.Context, id int) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionCounter) FindByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionCounter) FindByYear(ctx context.Context, year *int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionCounter) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	return r.counts[categoryID], nil
}

func (r *fakeTransactionCounter) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionCounter) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionCounter) Delete(ctx context.Context, id int) error {
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

func predefinedCategory(id int, name string, categoryType entity.CategoryType) *entity.Category {
	return &entity.Category{
		ID:           id,
		Name:         name,
		Type:         categoryType,
		IsPredefined: true,
		CreatedAt:    time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC),
	}
}

func userCategory(id int, name string, categoryType entity.CategoryType) *entity.Category {
	return &entity.Category{
		ID:        id,
		Name:      name,
		Type:      categoryType,
		CreatedAt: time.Now().UTC(),
	}
}
