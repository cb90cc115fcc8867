package handlers

import (
	"net/http"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptHandler handles the two-step receipt ingestion flow
type ReceiptHandler struct {
	receiptService services.ReceiptServiceInterface
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService services.ReceiptServiceInterface) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// ConfirmReceipt validates parsed receipt fields and returns a proposal
// @Summary Confirm a parsed receipt
// @Description Validate extracted receipt fields, fill in a category when missing, and attach plausibility warnings. Nothing is persisted.
// @Tags Receipts
// @Accept json
// @Produce json
// @Param request body dto.ConfirmReceiptRequest true "Parsed receipt fields"
// @Success 200 {object} dto.ReceiptProposalResponse "Receipt proposal with warnings"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 422 {object} errors.ErrorResponse "RECEIPT_001 - Incomplete receipt or RECEIPT_002 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /receipts/confirm [post]
func (h *ReceiptHandler) ConfirmReceipt(c echo.Context) error {
	var req dto.ConfirmReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	proposal, err := h.receiptService.ConfirmReceipt(req.Date, req.Merchant, req.Amount, req.Category)
	if err != nil {
		return sendReceiptError(c, err)
	}

	return c.JSON(http.StatusOK, proposalResponse(proposal))
}

// ParseReceipt extracts fields from raw receipt text and returns a proposal
// @Summary Parse raw receipt text
// @Description Extract merchant, date and amount from receipt text and behave like confirm
// @Tags Receipts
// @Accept json
// @Produce json
// @Param request body dto.ParseReceiptRequest true "Raw receipt text"
// @Success 200 {object} dto.ReceiptProposalResponse "Receipt proposal with warnings"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "RECEIPT_001 - Fields could not be extracted"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /receipts/parse [post]
func (h *ReceiptHandler) ParseReceipt(c echo.Context) error {
	var req dto.ParseReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	proposal, err := h.receiptService.ParseAndConfirm(req.Text)
	if err != nil {
		if errorIs(err, services.ErrReceiptUnparseable) {
			return SendError(c, errors.ReceiptIncomplete, errors.WithDetails(err.Error()))
		}
		return sendReceiptError(c, err)
	}

	return c.JSON(http.StatusOK, proposalResponse(proposal))
}

// AcceptReceipt persists a confirmed receipt as a ledger transaction
// @Summary Accept a receipt proposal
// @Description Persist a previously confirmed receipt into the ledger
// @Tags Receipts
// @Accept json
// @Produce json
// @Param request body dto.AcceptReceiptRequest true "Confirmed receipt"
// @Success 201 {object} dto.AcceptReceiptResponse "Receipt persisted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 422 {object} errors.ErrorResponse "RECEIPT_001 - Incomplete receipt"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /receipts [post]
func (h *ReceiptHandler) AcceptReceipt(c echo.Context) error {
	var req dto.AcceptReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.receiptService.AcceptReceipt(&services.ReceiptProposal{
		Date:     req.Date,
		Merchant: req.Merchant,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		return sendReceiptError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AcceptReceiptResponse{
		Transaction: transaction,
		Message:     "Receipt recorded successfully",
	})
}

func proposalResponse(proposal *services.ReceiptProposal) dto.ReceiptProposalResponse {
	warnings := proposal.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return dto.ReceiptProposalResponse{
		Date:     proposal.Date,
		Merchant: proposal.Merchant,
		Amount:   proposal.Amount,
		Category: proposal.Category,
		Warnings: warnings,
	}
}

// sendReceiptError maps receipt flow errors to API error codes
func sendReceiptError(c echo.Context, err error) error {
	switch {
	case errorIs(err, services.ErrReceiptIncomplete), errorIs(err, services.ErrReceiptInvalidDate):
		return SendError(c, errors.ReceiptIncomplete, errors.WithDetails(err.Error()))
	case errorIs(err, services.ErrReceiptInvalidAmount):
		return SendError(c, errors.ReceiptInvalidAmount)
	default:
		return sendTransactionError(c, err)
	}
}
