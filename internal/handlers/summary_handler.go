package handlers

import (
	"net/http"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSummaryDays = 30

// SummaryHandler handles spending summary HTTP requests
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary returns total and per-category spend for a date range
// @Summary Spending summary
// @Description Aggregate total and per-category spend over a date range (defaults to the trailing 30 days)
// @Tags Summary
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse "Spending summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	start, end, err := parseDateRange(c, defaultSummaryDays)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	total, err := h.summaryService.TotalSpend(start, end)
	if err != nil {
		return SendSystemError(c, err)
	}

	categories, err := h.summaryService.SpendByCategory(start, end)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		TotalSpend: total,
		Categories: categories,
	})
}

// GetMonthlyBreakdown returns per-month, per-category spend
// @Summary Monthly spending breakdown
// @Description Aggregate spend per calendar month and category over a date range (defaults to the trailing year)
// @Tags Summary
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.MonthlyBreakdownResponse "Monthly breakdown"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /summary/monthly [get]
func (h *SummaryHandler) GetMonthlyBreakdown(c echo.Context) error {
	start, end, err := parseDateRange(c, 365)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	breakdown, err := h.summaryService.MonthlyBreakdown(start, end)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthlyBreakdownResponse{Breakdown: breakdown})
}

// GetTopMerchants returns the highest-spend merchants for a date range
// @Summary Top merchants
// @Description Rank merchants by total spend over a date range (defaults to the trailing 30 days)
// @Tags Summary
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param limit query int false "Number of merchants to return" default(10)
// @Success 200 {object} dto.TopMerchantsResponse "Merchants ranked by spend"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/top [get]
func (h *SummaryHandler) GetTopMerchants(c echo.Context) error {
	start, end, err := parseDateRange(c, defaultSummaryDays)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	merchants, err := h.summaryService.TopMerchants(start, end, getIntParam(c, "limit", 0))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TopMerchantsResponse{Merchants: merchants})
}

// GetSpendTrend compares the trailing 30 days of spend with the 30 before
// @Summary Spend trend
// @Description Compare spend over the trailing 30 days with the 30 days before that
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.SpendTrendResponse "Spend trend"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /summary/trend [get]
func (h *SummaryHandler) GetSpendTrend(c echo.Context) error {
	trend, err := h.summaryService.SpendTrend(time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SpendTrendResponse{
		Current:  trend.Current,
		Previous: trend.Previous,
		Change:   trend.Change,
	})
}
