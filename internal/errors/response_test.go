package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	response := NewErrorResponse(TransactionNotFound, "trace-123")

	assert.Equal(t, string(TransactionNotFound), response.Error.Code)
	assert.Equal(t, "Transaction not found", response.Error.Message)
	assert.Equal(t, "trace-123", response.Error.TraceID)
	assert.Empty(t, response.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	response := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("amount: must be positive"),
		WithMessage("Custom message"),
	)

	assert.Equal(t, "Custom message", response.Error.Message)
	require.Len(t, response.Error.Details, 1)
	assert.Equal(t, "amount: must be positive", response.Error.Details[0])
}

func TestNewValidationError(t *testing.T) {
	response := NewValidationError(map[string]string{
		"merchant": "is required",
	}, "trace-456")

	assert.Equal(t, string(ValidationGeneral), response.Error.Code)
	require.Len(t, response.Error.Details, 1)
	assert.Equal(t, "merchant: is required", response.Error.Details[0])
}

func TestWrapSystemError(t *testing.T) {
	internalErr := assert.AnError
	response, err := WrapSystemError(internalErr, "trace-789")

	assert.Equal(t, internalErr, err, "internal error is preserved for logging")
	assert.Equal(t, string(SystemInternalError), response.Error.Code)
	assert.Equal(t, http.StatusInternalServerError, response.GetHTTPStatus())
}

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{TransactionMerchantRequired, http.StatusBadRequest},
		{BudgetInvalidLimit, http.StatusBadRequest},
		{TransactionNotFound, http.StatusNotFound},
		{BudgetNotFound, http.StatusNotFound},
		{ReceiptIncomplete, http.StatusUnprocessableEntity},
		{ReceiptInvalidAmount, http.StatusUnprocessableEntity},
		{TransactionImportEmpty, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func TestErrorResponse_JSONShape(t *testing.T) {
	response := NewErrorResponse(ReceiptIncomplete, "trace-abc", WithDetails("merchant missing"))

	data, err := response.ToJSON()
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "RECEIPT_001", decoded["error"]["code"])
	assert.Equal(t, "trace-abc", decoded["error"]["trace_id"])
}

func TestErrorResponse_Classification(t *testing.T) {
	clientErr := NewErrorResponse(TransactionNotFound, "t")
	assert.True(t, clientErr.IsClientError())
	assert.False(t, clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemDatabaseError, "t")
	assert.True(t, serverErr.IsServerError())
	assert.False(t, serverErr.IsClientError())
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(TransactionNotFound))
	assert.True(t, IsValidErrorCode(SystemInternalError))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_001")))
}

func TestGetErrorMessage_UnknownCode(t *testing.T) {
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("NOPE_001")))
}
