package handlers

import (
	"net/http"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// ListTransactions retrieves filtered transaction history
// @Summary List transactions
// @Description Retrieve transaction history filtered by trailing window or explicit date range, category, merchant and source
// @Tags Transactions
// @Produce json
// @Param days query int false "Trailing window in days (overrides startDate)"
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param category query string false "Filter by spending category"
// @Param merchant query string false "Filter by merchant name (case-insensitive substring)"
// @Param source query string false "Filter by provenance" Enums(manual, receipt, statement, import)
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse "Transaction history"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseListFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.ledgerService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// parseListFilters parses and validates transaction filter parameters
func parseListFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if days := getIntParam(c, "days", 0); days > 0 {
		start := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
		filters.StartDate = &start
	}

	if startDateStr := c.QueryParam("startDate"); startDateStr != "" && filters.StartDate == nil {
		if _, err := time.Parse("2006-01-02", startDateStr); err != nil {
			return filters, errDateFormat("startDate")
		}
		filters.StartDate = &startDateStr
	}

	if endDateStr := c.QueryParam("endDate"); endDateStr != "" {
		if _, err := time.Parse("2006-01-02", endDateStr); err != nil {
			return filters, errDateFormat("endDate")
		}
		filters.EndDate = &endDateStr
	}

	if category := c.QueryParam("category"); category != "" {
		if !models.IsValidCategory(category) {
			return filters, errInvalidField("category")
		}
		filters.Category = category
	}

	if source := c.QueryParam("source"); source != "" {
		if !models.IsValidSource(source) {
			return filters, errInvalidField("source")
		}
		filters.Source = source
	}

	filters.Merchant = c.QueryParam("merchant")

	return filters, nil
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve a single ledger transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.ledgerService.GetTransaction(transactionID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// CreateTransaction records a single transaction in the ledger
// @Summary Record a transaction
// @Description Record a manually entered transaction; category is auto-assigned when omitted
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := transactionFromRequest(req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.ledgerService.AddTransaction(transaction); err != nil {
		return sendTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: transaction,
		Message:     "Transaction recorded successfully",
	})
}

// ImportStatement records a batch of statement transactions
// @Summary Import a bank statement
// @Description Record a batch of statement transactions in one operation
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.ImportStatementRequest true "Statement transactions"
// @Success 201 {object} dto.ImportStatementResponse "Statement imported"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Statement contained no transactions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportStatement(c echo.Context) error {
	var req dto.ImportStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions := make([]models.Transaction, 0, len(req.Transactions))
	for _, entry := range req.Transactions {
		if entry.Source == "" {
			entry.Source = models.SourceImport
		}
		transaction, err := transactionFromRequest(entry)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
		transactions = append(transactions, *transaction)
	}

	imported, err := h.ledgerService.ImportStatement(transactions)
	if err != nil {
		if err == services.ErrEmptyImport {
			return SendError(c, errors.TransactionImportEmpty)
		}
		return sendTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ImportStatementResponse{
		Imported: imported,
		Message:  "Statement imported successfully",
	})
}

// transactionFromRequest converts a create request into a ledger transaction
func transactionFromRequest(req dto.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errDateFormat("date")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, errInvalidField("amount")
	}

	return &models.Transaction{
		Date:     date,
		Merchant: req.Merchant,
		Amount:   amount,
		Category: req.Category,
		Source:   req.Source,
	}, nil
}

// sendTransactionError maps ledger validation errors to API error codes
func sendTransactionError(c echo.Context, err error) error {
	switch {
	case errorIs(err, models.ErrMerchantMissing):
		return SendError(c, errors.TransactionMerchantRequired)
	case errorIs(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case errorIs(err, models.ErrInvalidSource):
		return SendError(c, errors.TransactionInvalidSource)
	default:
		return SendSystemError(c, err)
	}
}
