package repository

import (
	"context"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/cache"
)

// memoryStateRepository implements StateRepository on the in-process store
type memoryStateRepository struct {
	store *cache.MemoryStore
}

// NewMemoryStateRepository creates a state repository that lives as long as the process
func NewMemoryStateRepository(store *cache.MemoryStore) repositories.StateRepository {
	return &memoryStateRepository{store: store}
}

// Load returns the stored document
func (r *memoryStateRepository) Load(ctx context.Context, collection entities.Collection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, ok := r.store.Get(string(collection))
	if !ok {
		return nil, entities.ErrCollectionNotFound
	}
	return payload, nil
}

// Save replaces the document of a collection
func (r *memoryStateRepository) Save(ctx context.Context, collection entities.Collection, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Set(string(collection), payload, 0)
	return nil
}

// Delete removes a collection
func (r *memoryStateRepository) Delete(ctx context.Context, collection entities.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.Delete(string(collection))
	return nil
}
