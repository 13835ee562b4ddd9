package repositories

import (
	"context"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// StateRepository defines the key-value persistence capability the pipeline consumes.
// Documents are opaque JSON bytes; implementations must return them unchanged.
type StateRepository interface {
	// Load returns the stored document or entities.ErrCollectionNotFound
	Load(ctx context.Context, collection entities.Collection) ([]byte, error)

	// Save replaces the whole document of a collection
	Save(ctx context.Context, collection entities.Collection, payload []byte) error

	// Delete removes a collection; deleting an absent collection is not an error
	Delete(ctx context.Context, collection entities.Collection) error
}
