package handlers

import (
	"net/http"
	"time"

	"finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be registered in development environments
type DevHandler struct {
	ledgerService services.LedgerServiceInterface
	generator     services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	ledgerService services.LedgerServiceInterface,
	generator services.TransactionGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		ledgerService: ledgerService,
		generator:     generator,
	}
}

// SeedLedger generates a realistic sample ledger and imports it
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - days: Days of history to generate (default: 90, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
func (h *DevHandler) SeedLedger(c echo.Context) error {
	days := getIntParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.generator.GenerateLedger(startDate, endDate)

	created, err := h.ledgerService.ImportStatement(transactions)
	if err != nil {
		return SendError(c, errors.SystemInternalError, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample ledger generated successfully",
		"transactions_created": created,
		"date_range": map[string]string{
			"start": startDate.Format("2006-01-02"),
			"end":   endDate.Format("2006-01-02"),
		},
	})
}
