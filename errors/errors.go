package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Meeting Errors
func ErrMeetingNotFound(index int) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}.WithDetail("index", fmt.Sprintf("%d", index))
}

// ErrValidationFailed carries every validation message joined in the "errors" detail
func ErrValidationFailed(messages []string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_VALIDATION_FAILED,
		Message:  "Validation failed",
	}.WithDetail("errors", strings.Join(messages, "; "))
}

func ErrUnsupportedCollection(collection string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UNSUPPORTED_COLLECTION,
		Message:  "Unsupported collection",
	}.WithDetail("collection", collection)
}

func ErrMalformedMeeting(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MALFORMED_MEETING,
		Message:  "Meeting record is not valid JSON",
	}
}

func ErrUploadRejected(messages []string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_UPLOAD_VALIDATION_ISSUE,
		Message:  "Upload rejected",
	}.WithDetail("errors", strings.Join(messages, "; "))
}

// Export Errors
func ErrExportNoData(format string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EXPORT_NO_DATA,
		Message:  "No meeting data to export",
	}.WithDetail("format", format)
}

func ErrExportFailed(format, message string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  message,
	}.WithDetail("format", format)
}

// Backup Errors
func ErrBackupInvalid(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_BACKUP_INVALID,
		Message:  "Invalid backup envelope",
	}
}

func ErrBackupRestoreFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_BACKUP_RESTORE_FAILED,
		Message:  "Failed to restore backup",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrArchiveFailed(objectName string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_INTEGRATION_ARCHIVE_FAILED,
		Message:  "Failed to archive export artifact",
	}.WithDetail("object_name", objectName)
}
