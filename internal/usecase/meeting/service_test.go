package meeting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/adapter/repository"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	"github.com/johnquangdev/lti-omt/internal/infrastructure/cache"
	ucerrors "github.com/johnquangdev/lti-omt/internal/usecase/errors"
)

const validMeeting = `{"date":"2024-03-01","timestamp":"2024-03-01T10:00:00.000Z","attendees":["Ana"],` +
	`"isolations":[{"id":"CAHE-123-001","description":"Pump"},{"id":"CAHE-123-002","description":"Line"}],` +
	`"responses":{"CAHE-123-001":{"riskLevel":"Critical","actionItems":[{"description":"x","owner":"y"}]}}}`

func newService(t *testing.T) (*MeetingService, repositories.StateRepository) {
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	repo := repository.NewMemoryStateRepository(store)
	return NewMeetingService(repo, zap.NewNop()), repo
}

func TestSave_StoresStatisticsAndVersion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	out, err := svc.Save(ctx, []byte(validMeeting))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Index)
	assert.Equal(t, 2, out.MeetingData.ExecutiveSummary.TotalIsolationsReviewed)
	assert.Equal(t, 1, out.MeetingData.ExecutiveSummary.CriticalFindings)
	assert.Len(t, out.MeetingData.ExecutiveSummary.RelatedIsolationWarnings, 2)

	raw, err := svc.Get(ctx, 0)
	require.NoError(t, err)
	doc := gjson.ParseBytes(raw)
	assert.Equal(t, entities.MeetingRecordVersion, doc.Get("version").String())
	assert.Equal(t, int64(1), doc.Get("meetingData.executiveSummary.actionItemsGenerated").Int())
	assert.Equal(t, "Pump", doc.Get("isolations.0.description").String())

	m, err := svc.Normalized(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, m.MeetingData)
	assert.Len(t, m.MeetingData.ExecutiveSummary.RelatedIsolationWarnings, 2)
}

func TestSave_KeepsNestedMeetingDataMembers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	raw := `{"date":"2024-03-01","timestamp":"2024-03-01T10:00:00Z","version":"1.0","meetingData":{"isolations":[{"id":"CAHE-300-001","description":"Line"}]}}`
	_, err := svc.Save(ctx, []byte(raw))
	require.NoError(t, err)

	stored, err := svc.Get(ctx, 0)
	require.NoError(t, err)
	doc := gjson.ParseBytes(stored)
	assert.Equal(t, "1.0", doc.Get("version").String())
	assert.Equal(t, "CAHE-300-001", doc.Get("meetingData.isolations.0.id").String())
	assert.Equal(t, int64(1), doc.Get("meetingData.executiveSummary.totalIsolationsReviewed").Int())
}

func TestSave_RejectsInvalidRecords(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Save(context.Background(), []byte(`{"date":"yesterday"}`))

	var verr *ucerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, ucerrors.ErrMeetingInvalid)
	assert.Contains(t, verr.Errors, "Meeting timestamp is required")
}

func TestListGetDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	require.NoError(t, repo.Save(ctx, entities.CollectionSavedMeetings, []byte(
		`[{"date":"2023-01-01","responses":{"CAHE-100-001":{"riskLevel":"Low"}}},{"date":"2023-02-01","notes":"?"}]`,
	)))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entities.ShapeLegacy, list[0].Shape)
	assert.Equal(t, 1, list[0].IsolationCount)
	require.NotNil(t, list[0].Statistics)
	assert.Equal(t, 1, list[0].Statistics.RiskAnalysis.Distribution[entities.RiskLow].Count)
	assert.Nil(t, list[1].Statistics)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)

	require.NoError(t, svc.Delete(ctx, 0))
	raw, err := svc.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2023-02-01","notes":"?"}`, string(raw))

	assert.ErrorIs(t, svc.Delete(ctx, -1), entities.ErrMeetingNotFound)
}

func TestList_EmptyHistory(t *testing.T) {
	svc, _ := newService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMigrateLegacyKeys(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	require.NoError(t, repo.Save(ctx, entities.CollectionSavedMeetings, []byte(`[{"timestamp":"a"}]`)))
	require.NoError(t, repo.Save(ctx, entities.CollectionPastMeetings, []byte(`[{"timestamp":"a"},{"timestamp":"b"},{"date":"no-ts"}]`)))

	n, err := svc.MigrateLegacyKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	saved, err := repo.Load(ctx, entities.CollectionSavedMeetings)
	require.NoError(t, err)
	assert.Equal(t, `[{"timestamp":"a"},{"timestamp":"b"},{"date":"no-ts"}]`, string(saved))

	_, err = repo.Load(ctx, entities.CollectionPastMeetings)
	assert.ErrorIs(t, err, entities.ErrCollectionNotFound)

	n, err = svc.MigrateLegacyKeys(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPutState_SanitizesPeople(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	require.NoError(t, svc.PutState(ctx, entities.CollectionSavedPeople, []byte(`["Ana","<script>x()</script> Bo",7]`)))

	raw, err := svc.GetState(ctx, entities.CollectionSavedPeople)
	require.NoError(t, err)
	assert.Equal(t, `["Ana","Bo",7]`, string(raw))

	err = svc.PutState(ctx, entities.CollectionMeetingPeople, []byte(`{"name":"Ana"}`))
	assert.ErrorIs(t, err, ucerrors.ErrInvalidInput)
}

func TestState_RejectsOtherCollections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.GetState(ctx, entities.CollectionSavedMeetings)
	assert.ErrorIs(t, err, entities.ErrUnknownCollection)

	err = svc.PutState(ctx, entities.Collection("other"), []byte(`{}`))
	assert.ErrorIs(t, err, entities.ErrUnknownCollection)

	require.NoError(t, svc.PutState(ctx, entities.CollectionCurrentMeetingResponses, []byte(`{"CAHE-1":{}}`)))
	_, err = svc.GetState(ctx, entities.CollectionCurrentMeetingInfo)
	assert.ErrorIs(t, err, entities.ErrCollectionNotFound)
}
