// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
//
// CreatedAt and UpdatedAt are managed by the application layer, not by GORM's
// timestamp tracking: UpdatedAt must stay NULL until the first update.
type TransactionModel struct {
	ID          int             `gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(200);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null"`
	CategoryID  int             `gorm:"not null;index"`
	Notes       string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false"`

	// Restrict-on-delete is also enforced in the service layer; the FK is a
	// storage-level backstop.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		CategoryID:  transaction.CategoryID,
		Notes:       transaction.Notes,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
