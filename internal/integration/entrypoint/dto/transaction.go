// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	CategoryID  int     `json:"category_id" binding:"required"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// All mutable fields are overwritten; there is no partial update.
type UpdateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	CategoryID  int     `json:"category_id" binding:"required"`
	Notes       string  `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts are rendered as strings to avoid floating-point drift on the wire.
type TransactionResponse struct {
	ID           int        `json:"id"`
	Date         time.Time  `json:"date"`
	Description  string     `json:"description"`
	Amount       string     `json:"amount"`
	Type         string     `json:"type"`
	CategoryID   int        `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PaginationResponse represents pagination metadata in API responses.
type PaginationResponse struct {
	PageNumber  int   `json:"page_number"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// TransactionListResponse represents the page envelope for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Date:         txn.Date,
		Description:  txn.Description,
		Amount:       txn.Amount.String(),
		Type:         string(txn.Type),
		CategoryID:   txn.CategoryID,
		CategoryName: txn.CategoryName,
		Notes:        txn.Notes,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	responses := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Pagination: PaginationResponse{
			PageNumber:  output.Pagination.PageNumber,
			PageSize:    output.Pagination.PageSize,
			TotalCount:  output.Pagination.TotalCount,
			TotalPages:  output.Pagination.TotalPages,
			HasNext:     output.Pagination.HasNext,
			HasPrevious: output.Pagination.HasPrevious,
		},
	}
}
