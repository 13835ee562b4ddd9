package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
)

func TestAggregate_RelatedWarnings(t *testing.T) {
	isolations := []entities.Isolation{
		{ID: "CAHE-123-001", Description: "Pump A"},
		{ID: "CAHE-123-002", Description: "Pump B"},
		{ID: "CAHE-456-001", Description: "Tank"},
	}

	data := Aggregate(map[string]entities.Response{}, entities.MeetingInfo{}, isolations)

	warnings := data.ExecutiveSummary.RelatedIsolationWarnings
	require.Len(t, warnings, 2)
	assert.Equal(t, entities.RelatedIsolationWarning{
		IsolationID: "CAHE-123-001", IsolationDescription: "Pump A", RelatedCount: 1, RelatedIDs: []string{"CAHE-123-002"},
	}, warnings[0])
	assert.Equal(t, "CAHE-123-002", warnings[1].IsolationID)
	assert.Equal(t, []string{"CAHE-123-001"}, warnings[1].RelatedIDs)
}

func TestAggregate_CriticalFindingsIncludeLegacyRiskAlias(t *testing.T) {
	m, err := shape.Normalize([]byte(`{"responses":{
		"CAHE-100-001":{"riskLevel":"Critical"},
		"CAHE-200-001":{"risk":"High"},
		"CAHE-300-001":{"riskLevel":"Low"}
	}}`))
	require.NoError(t, err)

	data := Aggregate(m.AggregateResponses(), m.Info(), m.ListedIsolations())

	assert.Equal(t, 2, data.ExecutiveSummary.CriticalFindings)
	dist := data.RiskAnalysis.Distribution
	assert.Equal(t, entities.RiskBucket{Count: 1, Percentage: 33.3}, dist[entities.RiskCritical])
	assert.Equal(t, entities.RiskBucket{Count: 1, Percentage: 33.3}, dist[entities.RiskHigh])
	assert.Equal(t, entities.RiskBucket{}, dist[entities.RiskMedium])
	assert.Equal(t, 1, dist[entities.RiskLow].Count)
}

func TestAggregate_EmptyIsolationsCountsResponses(t *testing.T) {
	responses := map[string]entities.Response{
		"CAHE-123-001": {ActionItems: []entities.ActionItem{{Description: "x", Owner: "y"}}},
	}

	data := Aggregate(responses, entities.MeetingInfo{}, []entities.Isolation{})

	assert.Equal(t, 1, data.ExecutiveSummary.TotalIsolationsReviewed)
	assert.Equal(t, 1, data.ExecutiveSummary.ActionItemsGenerated)
	assert.Equal(t, 1, data.ExecutiveSummary.ReviewedCount)
}

func TestAggregate_ActionItemsSum(t *testing.T) {
	responses := map[string]entities.Response{
		"a": {ActionItems: []entities.ActionItem{{}, {}, {}}},
		"b": {},
		"c": {ActionItems: []entities.ActionItem{}},
		"d": {ActionItems: []entities.ActionItem{{Description: "z"}}},
	}

	data := Aggregate(responses, entities.MeetingInfo{}, nil)

	assert.Equal(t, 4, data.ExecutiveSummary.ActionItemsGenerated)
}

func TestAggregate_TotalIsAtLeastBothSources(t *testing.T) {
	isolations := []entities.Isolation{{ID: "CAHE-1"}, {ID: "CAHE-2"}, {ID: "CAHE-3"}}
	responses := map[string]entities.Response{"CAHE-1": {}}

	data := Aggregate(responses, entities.MeetingInfo{}, isolations)
	assert.Equal(t, 3, data.ExecutiveSummary.TotalIsolationsReviewed)

	data = Aggregate(map[string]entities.Response{"a": {}, "b": {}, "c": {}, "d": {}}, entities.MeetingInfo{}, isolations)
	assert.Equal(t, 4, data.ExecutiveSummary.TotalIsolationsReviewed)
}

func TestAggregate_Idempotent(t *testing.T) {
	isolations := []entities.Isolation{{ID: "CAHE-123-001"}, {ID: "CAHE-123-002"}}
	responses := map[string]entities.Response{
		"CAHE-123-001": {RiskLevel: entities.RiskHigh, ActionItems: []entities.ActionItem{{Description: "a"}}},
		"CAHE-123-002": {RiskLevel: entities.RiskMedium},
	}
	info := entities.MeetingInfo{Date: "2024-01-01", Attendees: []string{"Ana"}}

	assert.Equal(t, Aggregate(responses, info, isolations), Aggregate(responses, info, isolations))
}

func TestAggregate_NilResponsesIsZeroed(t *testing.T) {
	data := Aggregate(nil, entities.MeetingInfo{}, []entities.Isolation{{ID: "CAHE-123-001"}, {ID: "CAHE-123-002"}})

	summary := data.ExecutiveSummary
	assert.Zero(t, summary.TotalIsolationsReviewed)
	assert.Zero(t, summary.CriticalFindings)
	assert.Zero(t, summary.ActionItemsGenerated)
	assert.Empty(t, summary.RelatedIsolationWarnings)
	assert.Equal(t, entities.MeetingEfficiencyScore, summary.MeetingEfficiencyScore)
	assert.Len(t, data.RiskAnalysis.Distribution, 4)
}

func TestAggregate_DistributionAlwaysHasFourLevels(t *testing.T) {
	data := Aggregate(map[string]entities.Response{"x": {RiskLevel: "Unknown"}}, entities.MeetingInfo{}, nil)

	for _, level := range entities.RiskLevels {
		bucket, ok := data.RiskAnalysis.Distribution[level]
		assert.True(t, ok, level)
		assert.Zero(t, bucket.Count)
	}
}

func TestFromMeeting(t *testing.T) {
	precomputed := &entities.Meeting{MeetingData: &entities.MeetingData{ExecutiveSummary: entities.ExecutiveSummary{CriticalFindings: 7}}}
	data, ok := FromMeeting(precomputed)
	require.True(t, ok)
	assert.Equal(t, 7, data.ExecutiveSummary.CriticalFindings)

	legacy := &entities.Meeting{
		Isolations: []entities.Isolation{{ID: "CAHE-1"}},
		Responses:  map[string]entities.Response{"CAHE-1": {RiskLevel: entities.RiskCritical}},
	}
	data, ok = FromMeeting(legacy)
	require.True(t, ok)
	assert.Equal(t, 1, data.ExecutiveSummary.CriticalFindings)

	_, ok = FromMeeting(&entities.Meeting{})
	assert.False(t, ok)
}

func TestFromMeeting_OrphanResponsesDoNotInflateTotals(t *testing.T) {
	m, err := shape.Normalize([]byte(`{
		"isolations":[{"id":"CAHE-123-001","description":"Pump"},{"id":"CAHE-456-001","description":"Tank"}],
		"responses":{"CAHE-123-001":{"riskLevel":"Low"},"CAHE-123-009":{"riskLevel":"High"}}
	}`))
	require.NoError(t, err)
	require.Len(t, m.Isolations, 3)

	data, ok := FromMeeting(m)
	require.True(t, ok)
	assert.Equal(t, 2, data.ExecutiveSummary.TotalIsolationsReviewed)
	assert.Equal(t, 2, data.ExecutiveSummary.ReviewedCount)
	assert.Empty(t, data.ExecutiveSummary.RelatedIsolationWarnings)
}

func TestFromMeeting_NonMappingResponsesYieldZeroedFigures(t *testing.T) {
	for name, responses := range map[string]string{
		"string": `"oops"`,
		"array":  `[{"riskLevel":"High"}]`,
		"number": `3`,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := shape.Normalize([]byte(`{
				"isolations":[{"id":"CAHE-123-001","description":"Pump A"},{"id":"CAHE-123-002","description":"Pump B"}],
				"responses":` + responses + `}`))
			require.NoError(t, err)
			require.True(t, m.ResponsesMalformed)
			assert.Nil(t, m.AggregateResponses())

			data, ok := FromMeeting(m)
			require.True(t, ok)
			summary := data.ExecutiveSummary
			assert.Zero(t, summary.TotalIsolationsReviewed)
			assert.Zero(t, summary.ReviewedCount)
			assert.Empty(t, summary.RelatedIsolationWarnings)
			assert.Equal(t, entities.MeetingEfficiencyScore, summary.MeetingEfficiencyScore)
			assert.Len(t, data.RiskAnalysis.Distribution, len(entities.RiskLevels))
		})
	}
}

func TestFromMeeting_NullResponsesCountAsAbsent(t *testing.T) {
	m, err := shape.Normalize([]byte(`{
		"isolations":[{"id":"CAHE-123-001"},{"id":"CAHE-123-002"}],
		"responses":null
	}`))
	require.NoError(t, err)
	assert.False(t, m.ResponsesMalformed)

	data, ok := FromMeeting(m)
	require.True(t, ok)
	assert.Equal(t, 2, data.ExecutiveSummary.TotalIsolationsReviewed)
	assert.Len(t, data.ExecutiveSummary.RelatedIsolationWarnings, 2)
}
