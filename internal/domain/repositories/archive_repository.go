package repositories

import (
	"context"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// ArchiveRepository keeps the index of archived export documents
type ArchiveRepository interface {
	Create(ctx context.Context, record *entities.ArchiveRecord) error

	// List returns the newest records first
	List(ctx context.Context, limit int) ([]*entities.ArchiveRecord, error)
}
