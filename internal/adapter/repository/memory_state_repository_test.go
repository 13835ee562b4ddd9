package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/cache"
)

func newMemoryRepo(t *testing.T) repositories.StateRepository {
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	return NewMemoryStateRepository(store)
}

func TestMemoryStateRepository_RoundTripsBytes(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	_, err := repo.Load(ctx, entities.CollectionSavedPeople)
	assert.ErrorIs(t, err, entities.ErrCollectionNotFound)

	payload := []byte("[ \"Ana\",\n  \"Bo\" ]")
	require.NoError(t, repo.Save(ctx, entities.CollectionSavedPeople, payload))

	got, err := repo.Load(ctx, entities.CollectionSavedPeople)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, repo.Delete(ctx, entities.CollectionSavedPeople))
	require.NoError(t, repo.Delete(ctx, entities.CollectionSavedPeople))
	_, err = repo.Load(ctx, entities.CollectionSavedPeople)
	assert.ErrorIs(t, err, entities.ErrCollectionNotFound)
}

func TestMemoryStateRepository_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newMemoryRepo(t).Load(ctx, entities.CollectionSavedMeetings)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryArchiveRepository_ListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryArchiveRepository()

	older := entities.NewArchiveRecord("a", "a.pdf", "application/pdf", 1, "")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := entities.NewArchiveRecord("b", "b.pdf", "application/pdf", 1, "")

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ObjectName)
}
