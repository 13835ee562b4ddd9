package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func TestValidateFile(t *testing.T) {
	assert.True(t, ValidateFile(FileInfo{Name: "a.xlsx", Size: 1024, MimeType: xlsxType}).IsValid)
	assert.True(t, ValidateFile(FileInfo{Name: "a.xls", Size: MaxUploadBytes, MimeType: "application/vnd.ms-excel"}).IsValid)

	res := ValidateFile(FileInfo{Name: " ", Size: MaxUploadBytes + 1, MimeType: "text/csv"})
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"File size must be less than 10MB",
		"Only Excel files (.xlsx, .xls) are allowed",
		"File name is required",
	}, res.Errors)
}

func TestValidateFile_IgnoresMimeParameters(t *testing.T) {
	assert.True(t, ValidateFile(FileInfo{Name: "a.xlsx", Size: 1, MimeType: xlsxType + "; charset=binary"}).IsValid)
}
