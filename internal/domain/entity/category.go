// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// CategoryType represents which transaction directions a category accepts.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// Category represents a transaction category in the Budget Tracker system.
//
// Predefined categories are created once at first initialization and are
// read-only through the service layer.
type Category struct {
	ID           int
	Name         string
	Type         CategoryType
	IsPredefined bool
	CreatedAt    time.Time
}

// NewCategory creates a new user-defined Category entity. The ID is assigned
// by the persistence layer on insert.
func NewCategory(name string, categoryType CategoryType) *Category {
	return &Category{
		Name:         name,
		Type:         categoryType,
		IsPredefined: false,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsValidCategoryType reports whether the given category type is one of the
// supported values.
func IsValidCategoryType(categoryType CategoryType) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
		return true
	}
	return false
}
