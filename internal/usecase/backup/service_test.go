package backup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/adapter/repository"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/cache"
)

func newService(t *testing.T) (*BackupService, repositories.StateRepository) {
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	repo := repository.NewMemoryStateRepository(store)
	svc := NewBackupService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_RecordsAbsentCollectionsAsNull(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)
	require.NoError(t, repo.Save(ctx, entities.CollectionSavedPeople, []byte(`["Ana"]`)))

	env, err := svc.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01T09:30:00.000Z", env.Timestamp)
	assert.Equal(t, entities.BackupVersion, env.Version)
	assert.JSONEq(t, `["Ana"]`, string(env.Data.SavedPeople))
	assert.Equal(t, "null", string(env.Data.SavedMeetings))

	raw, err := svc.Encode(env)
	require.NoError(t, err)

	doc := gjson.ParseBytes(raw)
	assert.Equal(t, "2.0", doc.Get("version").String())
	assert.Equal(t, gjson.Null, doc.Get("data.currentMeeting").Type)
	var keys []string
	doc.Get("data").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"savedPeople", "meetingPeople", "savedMeetings", "currentMeeting"}, keys)
}

func TestBackupRoundTrip_IsByteExact(t *testing.T) {
	ctx := context.Background()
	source, sourceRepo := newService(t)

	meetings := []byte("[\n  {\"date\": \"2024-03-01\", \"notes\": \"spacing  kept\", \"n\": 1.50}\n]")
	people := []byte(`[ "Ana", "Bo" ]`)
	current := []byte(`{"date":"2024-03-02","extra":{"z":1,"a":2}}`)
	require.NoError(t, sourceRepo.Save(ctx, entities.CollectionSavedMeetings, meetings))
	require.NoError(t, sourceRepo.Save(ctx, entities.CollectionSavedPeople, people))
	require.NoError(t, sourceRepo.Save(ctx, entities.CollectionCurrentMeeting, current))

	env, err := source.Create(ctx)
	require.NoError(t, err)
	raw, err := source.Encode(env)
	require.NoError(t, err)

	target, targetRepo := newService(t)
	out, err := target.Restore(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, []entities.Collection{
		entities.CollectionSavedPeople,
		entities.CollectionSavedMeetings,
		entities.CollectionCurrentMeeting,
	}, out.Restored)
	assert.Equal(t, []entities.Collection{entities.CollectionMeetingPeople}, out.Skipped)

	for collection, want := range map[entities.Collection][]byte{
		entities.CollectionSavedMeetings:  meetings,
		entities.CollectionSavedPeople:    people,
		entities.CollectionCurrentMeeting: current,
	} {
		got, err := targetRepo.Load(ctx, collection)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), collection)
	}
}

func TestRestore_PartialEnvelopeLeavesOtherCollections(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)
	require.NoError(t, repo.Save(ctx, entities.CollectionSavedMeetings, []byte(`[{"date":"keep"}]`)))
	require.NoError(t, repo.Save(ctx, entities.CollectionSavedPeople, []byte(`["old"]`)))

	_, err := svc.Restore(ctx, []byte(`{"timestamp":"t","version":"2.0","data":{"savedPeople":["new"],"currentMeeting":null}}`))
	require.NoError(t, err)

	people, err := repo.Load(ctx, entities.CollectionSavedPeople)
	require.NoError(t, err)
	assert.Equal(t, `["new"]`, string(people))

	meetings, err := repo.Load(ctx, entities.CollectionSavedMeetings)
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"keep"}]`, string(meetings))

	_, err = repo.Load(ctx, entities.CollectionCurrentMeeting)
	assert.ErrorIs(t, err, entities.ErrCollectionNotFound)
}

func TestRestore_RejectsMalformedEnvelopes(t *testing.T) {
	svc, _ := newService(t)

	cases := map[string]string{
		`{"version":"2.0","data":{}}`:                "Invalid backup: missing timestamp",
		`{"timestamp":"t","data":{}}`:                "Invalid backup: missing version",
		`{"timestamp":"t","version":"2.0"}`:          "Invalid backup: missing data",
		`{"timestamp":"t","version":"2.0","data":[]}`: "Invalid backup: missing data",
	}
	for raw, want := range cases {
		_, err := svc.Restore(context.Background(), []byte(raw))
		require.Error(t, err, raw)
		assert.Equal(t, want, err.Error())
		assert.ErrorIs(t, err, entities.ErrInvalidBackup)
	}

	_, err := svc.Restore(context.Background(), []byte(`{`))
	assert.ErrorIs(t, err, entities.ErrInvalidBackup)
}
