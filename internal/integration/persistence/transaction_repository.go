// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// transactionOrder is the deterministic listing order: newest date first,
// highest ID first within the same date.
const transactionOrder = "date DESC, id DESC"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindPage retrieves one page of transactions and the total record count.
func (r *transactionRepository) FindPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, int64, error) {
	var totalCount int64
	if result := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Count(&totalCount); result.Error != nil {
		return nil, 0, result.Error
	}

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order(transactionOrder).
		Offset(offset).
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return toEntities(transactionModels), totalCount, nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id int) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByDateRange retrieves all transactions within the inclusive date range.
func (r *transactionRepository) FindByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Order(transactionOrder)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var transactionModels []model.TransactionModel
	if result := query.Find(&transactionModels); result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByYear retrieves all transactions in the given calendar year. The
// half-open range keeps the query portable across SQLite and PostgreSQL.
func (r *transactionRepository) FindByYear(ctx context.Context, year *int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Order(transactionOrder)
	if year != nil {
		yearStart := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := yearStart.AddDate(1, 0, 0)
		query = query.Where("date >= ? AND date < ?", yearStart, yearEnd)
	}

	var transactionModels []model.TransactionModel
	if result := query.Find(&transactionModels); result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// CountByCategory returns how many transactions reference the category.
func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Create inserts a new transaction and backfills the generated ID.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.ID = transactionModel.ID
	return nil
}

// Update persists changes to an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
