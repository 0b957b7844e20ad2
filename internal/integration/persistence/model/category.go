// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
//
// The unique index on name backs the service-level uniqueness check; the
// case-insensitive comparison itself happens in the repository query.
type CategoryModel struct {
	ID           int       `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type         string    `gorm:"type:varchar(10);not null"`
	IsPredefined bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		Type:         entity.CategoryType(m.Type),
		IsPredefined: m.IsPredefined,
		CreatedAt:    m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:           category.ID,
		Name:         category.Name,
		Type:         string(category.Type),
		IsPredefined: category.IsPredefined,
		CreatedAt:    category.CreatedAt,
	}
}
