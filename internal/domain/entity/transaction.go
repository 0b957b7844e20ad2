// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 200
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 500
)

// Transaction represents a financial transaction in the Budget Tracker system.
// Every transaction references exactly one category.
type Transaction struct {
	ID          int
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always positive; direction is carried by Type
	Type        TransactionType
	CategoryID  int
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // Nil until the first update
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// persistence layer on insert.
func NewTransaction(
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID int,
	notes string,
) *Transaction {
	return &Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsValidTransactionType reports whether the given transaction type is one of
// the supported values.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}
