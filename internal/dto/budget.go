package dto

import (
	"finance-ledger/internal/models"
)

// SetBudgetRequest represents the request payload for setting a category budget
type SetBudgetRequest struct {
	Category     string `json:"category" validate:"required,category"`
	MonthlyLimit string `json:"monthly_limit" validate:"required"`
}

// SetBudgetResponse represents the response after setting a budget
type SetBudgetResponse struct {
	Budget  *models.Budget `json:"budget"`
	Message string         `json:"message"`
}

// BudgetStatusListResponse reports spend against every configured budget for a month
type BudgetStatusListResponse struct {
	Month    string                `json:"month"`
	Statuses []models.BudgetStatus `json:"statuses"`
}
