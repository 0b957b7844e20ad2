// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/statistics"
)

// OverallStatisticsResponse represents aggregated totals in API responses.
type OverallStatisticsResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryStatisticsResponse represents per-category totals in API responses.
type CategoryStatisticsResponse struct {
	CategoryID       int    `json:"category_id"`
	CategoryName     string `json:"category_name"`
	Type             string `json:"type"`
	TotalAmount      string `json:"total_amount"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryStatisticsListResponse represents the by-category report.
type CategoryStatisticsListResponse struct {
	Categories []CategoryStatisticsResponse `json:"categories"`
}

// MonthlyStatisticsResponse represents per-month totals in API responses.
type MonthlyStatisticsResponse struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	MonthName        string `json:"month_name"`
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// MonthlyStatisticsListResponse represents the monthly report.
type MonthlyStatisticsListResponse struct {
	Months []MonthlyStatisticsResponse `json:"months"`
}

// ToOverallStatisticsResponse converts a GetOverallStatisticsOutput to its DTO.
func ToOverallStatisticsResponse(output *statistics.GetOverallStatisticsOutput) OverallStatisticsResponse {
	return OverallStatisticsResponse{
		TotalIncome:      output.TotalIncome.String(),
		TotalExpenses:    output.TotalExpenses.String(),
		Balance:          output.Balance.String(),
		TransactionCount: output.TransactionCount,
	}
}

// ToCategoryStatisticsListResponse converts a GetCategoryStatisticsOutput to its DTO.
func ToCategoryStatisticsListResponse(output *statistics.GetCategoryStatisticsOutput) CategoryStatisticsListResponse {
	responses := make([]CategoryStatisticsResponse, len(output.Categories))
	for i, group := range output.Categories {
		responses[i] = CategoryStatisticsResponse{
			CategoryID:       group.CategoryID,
			CategoryName:     group.CategoryName,
			Type:             string(group.Type),
			TotalAmount:      group.TotalAmount.String(),
			TransactionCount: group.TransactionCount,
		}
	}
	return CategoryStatisticsListResponse{
		Categories: responses,
	}
}

// ToMonthlyStatisticsListResponse converts a GetMonthlyStatisticsOutput to its DTO.
func ToMonthlyStatisticsListResponse(output *statistics.GetMonthlyStatisticsOutput) MonthlyStatisticsListResponse {
	responses := make([]MonthlyStatisticsResponse, len(output.Months))
	for i, month := range output.Months {
		responses[i] = MonthlyStatisticsResponse{
			Year:             month.Year,
			Month:            month.Month,
			MonthName:        month.MonthName,
			TotalIncome:      month.TotalIncome.String(),
			TotalExpenses:    month.TotalExpenses.String(),
			Balance:          month.Balance.String(),
			TransactionCount: month.TransactionCount,
		}
	}
	return MonthlyStatisticsListResponse{
		Months: responses,
	}
}
