package handlers

import (
	"net/http"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles monthly budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudget creates or replaces the monthly limit for a category
// @Summary Set a category budget
// @Description Create or replace the monthly spending limit for a category
// @Tags Budgets
// @Accept json
// @Produce json
// @Param category path string true "Spending category"
// @Param request body dto.SetBudgetRequest true "Monthly limit"
// @Success 200 {object} dto.SetBudgetResponse "Budget set"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid category or BUDGET_002 - Invalid limit"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [put]
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	category := c.Param("category")
	if !models.IsValidCategory(category) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Unknown category"))
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	monthlyLimit, err := decimal.NewFromString(req.MonthlyLimit)
	if err != nil {
		return SendError(c, errors.BudgetInvalidLimit, errors.WithDetails("monthly_limit must be a decimal amount"))
	}

	budget, err := h.budgetService.SetBudget(category, monthlyLimit)
	if err != nil {
		switch {
		case errorIs(err, services.ErrInvalidCategory):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		case errorIs(err, models.ErrInvalidBudgetLimit):
			return SendError(c, errors.BudgetInvalidLimit)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.SetBudgetResponse{
		Budget:  budget,
		Message: "Budget set successfully",
	})
}

// GetBudgetStatuses reports spend against every configured budget
// @Summary Budget statuses
// @Description Report month-to-date spend against every configured budget
// @Tags Budgets
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.BudgetStatusListResponse "Budget statuses"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgetStatuses(c echo.Context) error {
	month := time.Now().UTC()
	if monthStr := c.QueryParam("month"); monthStr != "" {
		parsed, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("month must be YYYY-MM"))
		}
		month = parsed
	}

	statuses, err := h.budgetService.BudgetStatuses(month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetStatusListResponse{
		Month:    month.Format("2006-01"),
		Statuses: statuses,
	})
}
