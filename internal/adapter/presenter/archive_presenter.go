package presenter

import (
	"time"

	"github.com/johnquangdev/lti-omt/internal/adapter/dto/export"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// ToArchiveResponse converts an archive record to its DTO
func ToArchiveResponse(r *entities.ArchiveRecord) export.ArchiveResponse {
	return export.ArchiveResponse{
		ID:          r.ID.String(),
		ObjectName:  r.ObjectName,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		MeetingDate: r.MeetingDate,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		URL:         r.URL,
	}
}

// ToArchiveListResponse converts archive records to the list DTO
func ToArchiveListResponse(records []*entities.ArchiveRecord) *export.ArchiveListResponse {
	items := make([]export.ArchiveResponse, len(records))
	for i, r := range records {
		items[i] = ToArchiveResponse(r)
	}
	return &export.ArchiveListResponse{Items: items, Count: len(items)}
}
