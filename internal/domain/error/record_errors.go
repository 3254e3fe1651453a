// Package error defines domain-specific errors for the reporting application.
package error

import "errors"

// Financial record domain errors.
var (
	// ErrRecordNotFound is returned when a financial record is not found.
	ErrRecordNotFound = errors.New("financial record not found")

	// ErrMalformedRecord is returned when a raw record cannot be ingested.
	ErrMalformedRecord = errors.New("malformed financial record")

	// ErrInvalidRecordAmount is returned when the amount is not a positive number.
	ErrInvalidRecordAmount = errors.New("amount must be greater than zero")

	// ErrInvalidRecordDate is returned when the anchor date is missing or invalid.
	ErrInvalidRecordDate = errors.New("invalid record date")

	// ErrInvalidInstallmentCount is returned when a fixed-term record has no installments.
	ErrInvalidInstallmentCount = errors.New("installments must be greater than zero for fixed-term frequencies")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrCategoryTooLong is returned when the category exceeds the maximum length.
	ErrCategoryTooLong = errors.New("category too long")
)

// RecordErrorCode defines error codes for financial record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordAmount     RecordErrorCode = "REC-010001"
	ErrCodeInvalidRecordDate       RecordErrorCode = "REC-010002"
	ErrCodeInvalidInstallmentCount RecordErrorCode = "REC-010003"
	ErrCodeRecordKindInvalid       RecordErrorCode = "REC-010004"
	ErrCodeDescriptionTooLong      RecordErrorCode = "REC-010005"
	ErrCodeCategoryTooLong         RecordErrorCode = "REC-010006"
	ErrCodeMissingRecordFields     RecordErrorCode = "REC-010007"
	ErrCodeInvalidRecordID         RecordErrorCode = "REC-010008"

	// Not found errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a financial record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
