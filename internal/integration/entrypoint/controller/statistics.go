// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/statistics"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// StatisticsController handles statistics endpoints.
type StatisticsController struct {
	overallUseCase    *statistics.GetOverallStatisticsUseCase
	byCategoryUseCase *statistics.GetCategoryStatisticsUseCase
	monthlyUseCase    *statistics.GetMonthlyStatisticsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(
	overallUseCase *statistics.GetOverallStatisticsUseCase,
	byCategoryUseCase *statistics.GetCategoryStatisticsUseCase,
	monthlyUseCase *statistics.GetMonthlyStatisticsUseCase,
) *StatisticsController {
	return &StatisticsController{
		overallUseCase:    overallUseCase,
		byCategoryUseCase: byCategoryUseCase,
		monthlyUseCase:    monthlyUseCase,
	}
}

// Overall handles GET /statistics/overall requests.
func (c *StatisticsController) Overall(ctx *gin.Context) {
	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.overallUseCase.Execute(ctx.Request.Context(), statistics.GetOverallStatisticsInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverallStatisticsResponse(output))
}

// ByCategory handles GET /statistics/by-category requests.
func (c *StatisticsController) ByCategory(ctx *gin.Context) {
	startDate, endDate, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context(), statistics.GetCategoryStatisticsInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryStatisticsListResponse(output))
}

// Monthly handles GET /statistics/monthly requests.
func (c *StatisticsController) Monthly(ctx *gin.Context) {
	var year *int
	if raw := ctx.Query("year"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
			})
			return
		}
		year = &value
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), statistics.GetMonthlyStatisticsInput{
		Year: year,
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatisticsListResponse(output))
}

func (c *StatisticsController) handleStatisticsError(ctx *gin.Context, err error) {
	slog.Error("statistics operation failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

// parseDateRange reads the optional startDate/endDate query parameters.
func parseDateRange(ctx *gin.Context) (start, end *time.Time, ok bool) {
	if raw := ctx.Query("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate, expected YYYY-MM-DD",
			})
			return nil, nil, false
		}
		parsed = parsed.UTC()
		start = &parsed
	}
	if raw := ctx.Query("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate, expected YYYY-MM-DD",
			})
			return nil, nil, false
		}
		parsed = parsed.UTC()
		end = &parsed
	}
	return start, end, true
}
