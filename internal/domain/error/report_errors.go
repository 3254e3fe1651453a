// Package error defines domain-specific errors for the reporting application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateFormat is returned when a date is not in yyyy-MM-dd format.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidRecordKind is returned when kind is not revenue or expense.
	ErrInvalidRecordKind = errors.New("kind must be: revenue or expense")

	// ErrMissingRecordKind is returned when kind is not provided.
	ErrMissingRecordKind = errors.New("kind is required")

	// ErrInvalidComputeRequest is returned when the compute payload cannot be read.
	ErrInvalidComputeRequest = errors.New("invalid compute request")

	// ErrWindowTooLarge is returned when a monthly series would exceed the allowed length.
	ErrWindowTooLarge = errors.New("date range is too large")

	// ErrRateLimited is returned when a client exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate      ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate        ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateFormat     ReportErrorCode = "RPT-010003"
	ErrCodeInvalidRecordKind     ReportErrorCode = "RPT-010004"
	ErrCodeMissingRecordKind     ReportErrorCode = "RPT-010005"
	ErrCodeInvalidComputeRequest ReportErrorCode = "RPT-010006"
	ErrCodeWindowTooLarge        ReportErrorCode = "RPT-010007"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
