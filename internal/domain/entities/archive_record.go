package entities

import (
	"time"

	"github.com/google/uuid"
)

// ArchiveRecord describes an exported document copied to object storage
type ArchiveRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ObjectName  string    `gorm:"type:varchar(512);not null" json:"object_name"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(128);not null" json:"content_type"`
	SizeBytes   int64     `gorm:"not null" json:"size_bytes"`
	MeetingDate string    `gorm:"type:varchar(32)" json:"meeting_date,omitempty"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`

	// URL is a presigned download link, filled in when listing
	URL string `gorm:"-" json:"url,omitempty"`
}

// TableName specifies the table name for ArchiveRecord
func (ArchiveRecord) TableName() string {
	return "export_archive"
}

// NewArchiveRecord creates a record with a fresh ID
func NewArchiveRecord(objectName, fileName, contentType string, size int64, meetingDate string) *ArchiveRecord {
	return &ArchiveRecord{
		ID:          uuid.New(),
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
		MeetingDate: meetingDate,
		CreatedAt:   time.Now().UTC(),
	}
}
