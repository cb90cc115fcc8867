package handlers

import (
	"net/http"

	"finance-ledger/internal/config"
	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const maxDetectionWindowDays = 365

// AnomalyHandler handles anomaly detection HTTP requests
type AnomalyHandler struct {
	anomalyService services.AnomalyServiceInterface
	detection      config.DetectionConfig
}

// NewAnomalyHandler creates a new anomaly handler
func NewAnomalyHandler(anomalyService services.AnomalyServiceInterface, detection config.DetectionConfig) *AnomalyHandler {
	return &AnomalyHandler{
		anomalyService: anomalyService,
		detection:      detection,
	}
}

// ListAnomalies scans the trailing window and returns flagged anomalies
// @Summary Detect anomalies
// @Description Scan recent transactions and return anomalies ordered by severity, then magnitude
// @Tags Anomalies
// @Produce json
// @Param days query int false "Trailing window in days (max 365)" default(90)
// @Success 200 {object} dto.AnomalyListResponse "Flagged anomalies"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid window"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /anomalies [get]
func (h *AnomalyHandler) ListAnomalies(c echo.Context) error {
	days := getIntParam(c, "days", h.detection.DefaultWindowDays)
	if days < 1 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("days must be at least 1"))
	}
	if days > maxDetectionWindowDays {
		days = maxDetectionWindowDays
	}

	anomalies, err := h.anomalyService.DetectRecent(days)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnomalyListResponse{
		Anomalies:  anomalies,
		Count:      len(anomalies),
		WindowDays: days,
	})
}

// CheckCandidate runs the single-transaction plausibility check
// @Summary Check a prospective transaction
// @Description Compare a merchant and amount against spend history and return plausibility warnings
// @Tags Anomalies
// @Accept json
// @Produce json
// @Param request body dto.CheckCandidateRequest true "Candidate transaction"
// @Success 200 {object} dto.CheckCandidateResponse "Plausibility warnings (empty when unremarkable)"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /anomalies/check [post]
func (h *AnomalyHandler) CheckCandidate(c echo.Context) error {
	var req dto.CheckCandidateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	warnings, err := h.anomalyService.CheckCandidate(req.Merchant, req.Amount)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CheckCandidateResponse{
		Merchant: req.Merchant,
		Amount:   req.Amount,
		Warnings: warnings,
	})
}
