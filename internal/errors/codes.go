package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidSource    ErrorCode = "TRANSACTION_003"
	TransactionMerchantRequired ErrorCode = "TRANSACTION_004"
	TransactionImportEmpty      ErrorCode = "TRANSACTION_005"
)

// Receipt error codes (RECEIPT_*)
const (
	ReceiptIncomplete    ErrorCode = "RECEIPT_001"
	ReceiptInvalidAmount ErrorCode = "RECEIPT_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound     ErrorCode = "BUDGET_001"
	BudgetInvalidLimit ErrorCode = "BUDGET_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidSource:    "Invalid transaction source",
	TransactionMerchantRequired: "Transaction merchant is required",
	TransactionImportEmpty:      "Statement import contained no transactions",

	// Receipt errors
	ReceiptIncomplete:    "Parsed receipt is missing required fields",
	ReceiptInvalidAmount: "Parsed receipt amount must be positive",

	// Budget errors
	BudgetNotFound:     "Budget not found for category",
	BudgetInvalidLimit: "Budget monthly limit must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
