package export

import (
	"context"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// Content types of the exported documents
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Artifact is a rendered export file
type Artifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
	MeetingDate string `json:"meetingDate,omitempty"`
}

// Archiver keeps a copy of exported artifacts
type Archiver interface {
	Archive(ctx context.Context, artifact *Artifact) (*entities.ArchiveRecord, error)
}
