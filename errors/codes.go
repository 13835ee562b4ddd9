package errors

// ErrorCode identifies an application error class in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Meetings and working set
	ErrorCode_MEETING_NOT_FOUND       ErrorCode = 2000
	ErrorCode_VALIDATION_FAILED       ErrorCode = 2001
	ErrorCode_UNSUPPORTED_COLLECTION  ErrorCode = 2002
	ErrorCode_MALFORMED_MEETING       ErrorCode = 2003
	ErrorCode_UPLOAD_VALIDATION_ISSUE ErrorCode = 2004

	// Export
	ErrorCode_EXPORT_NO_DATA ErrorCode = 3000
	ErrorCode_EXPORT_FAILED  ErrorCode = 3001

	// Backup
	ErrorCode_BACKUP_INVALID        ErrorCode = 4000
	ErrorCode_BACKUP_RESTORE_FAILED ErrorCode = 4001

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_ARCHIVE_FAILED ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_UNSUPPORTED_COLLECTION:     "UNSUPPORTED_COLLECTION",
	ErrorCode_MALFORMED_MEETING:          "MALFORMED_MEETING",
	ErrorCode_UPLOAD_VALIDATION_ISSUE:    "UPLOAD_VALIDATION_ISSUE",
	ErrorCode_EXPORT_NO_DATA:             "EXPORT_NO_DATA",
	ErrorCode_EXPORT_FAILED:              "EXPORT_FAILED",
	ErrorCode_BACKUP_INVALID:             "BACKUP_INVALID",
	ErrorCode_BACKUP_RESTORE_FAILED:      "BACKUP_RESTORE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_ARCHIVE_FAILED: "INTEGRATION_ARCHIVE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
