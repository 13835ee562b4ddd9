package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
)

// redisStateRepository implements StateRepository with one Redis string per collection
type redisStateRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStateRepository creates a Redis-backed state repository; keys are prefix+collection
func NewRedisStateRepository(client redis.UniversalClient, prefix string) repositories.StateRepository {
	return &redisStateRepository{client: client, prefix: prefix}
}

func (r *redisStateRepository) key(collection entities.Collection) string {
	return r.prefix + string(collection)
}

// Load returns the stored document
func (r *redisStateRepository) Load(ctx context.Context, collection entities.Collection) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, entities.ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", collection, err)
	}
	return payload, nil
}

// Save replaces the document of a collection
func (r *redisStateRepository) Save(ctx context.Context, collection entities.Collection, payload []byte) error {
	if err := r.client.Set(ctx, r.key(collection), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", collection, err)
	}
	return nil
}

// Delete removes a collection
func (r *redisStateRepository) Delete(ctx context.Context, collection entities.Collection) error {
	if err := r.client.Del(ctx, r.key(collection)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", collection, err)
	}
	return nil
}
