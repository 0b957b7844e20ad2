// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionDateInFuture is returned when the transaction date is after now.
	ErrTransactionDateInFuture = errors.New("transaction date cannot be in the future")

	// ErrDescriptionRequired is returned when the transaction description is blank.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the error class (01 validation, 03 not found)
// and YYYY is the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionDateInFuture TransactionErrorCode = "TXN-010001"
	ErrCodeDescriptionRequired     TransactionErrorCode = "TXN-010002"
	ErrCodeDescriptionTooLong      TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010004"
	ErrCodeNotesTooLong            TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidTransactionType  TransactionErrorCode = "TXN-010006"
	ErrCodeTxnCategoryNotFound     TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"

	// Not-found errors (03XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
