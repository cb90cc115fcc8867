package validation

import (
	"fmt"
	"reflect"
	"strings"

	"finance-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("transaction_source", validateTransactionSource)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCategory validates that a category is one of the known spending categories
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateTransactionSource validates that a source is one of the ingestion channels
func validateTransactionSource(fl validator.FieldLevel) bool {
	return models.IsValidSource(fl.Field().String())
}

// validateMoneyAmount validates a decimal string amount: non-zero, at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if value.IsZero() {
		return false
	}

	return value.Exponent() >= -2
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return value.GreaterThan(decimal.Zero)
	default:
		return false
	}
}

// FormatValidationErrors renders validator errors into a readable message
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fieldError.Field(), fieldError.Tag()))
	}
	return strings.Join(messages, "; ")
}
