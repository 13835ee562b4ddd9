package validation

import "strings"

// MaxUploadBytes is the largest accepted spreadsheet upload (10 MiB)
const MaxUploadBytes = 10 << 20

// AllowedUploadTypes are the spreadsheet MIME types accepted for import
var AllowedUploadTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
}

// FileInfo describes an uploaded file
type FileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// ValidateFile checks an upload against the size, type and name rules
func ValidateFile(f FileInfo) (out Result) {
	defer recoverInto(&out)

	var res Result
	if f.Size > MaxUploadBytes {
		res.add("File size must be less than 10MB")
	}
	if !allowedType(f.MimeType) {
		res.add("Only Excel files (.xlsx, .xls) are allowed")
	}
	if strings.TrimSpace(f.Name) == "" {
		res.add("File name is required")
	}
	return res.finish()
}

func allowedType(mime string) bool {
	// drop parameters such as "; charset=binary"
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))
	for _, allowed := range AllowedUploadTypes {
		if mime == allowed {
			return true
		}
	}
	return false
}
