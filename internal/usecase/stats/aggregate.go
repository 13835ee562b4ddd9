// Package stats computes the executive summary and risk distribution of a meeting.
package stats

import (
	"math"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/relation"
)

// Aggregate derives meeting statistics. It is pure: identical inputs give
// identical outputs. A nil responses map stands for a responses value that was
// not a mapping and yields zeroed figures.
func Aggregate(responses map[string]entities.Response, info entities.MeetingInfo, isolations []entities.Isolation) entities.MeetingData {
	data := entities.MeetingData{
		MeetingInfo: info,
		ExecutiveSummary: entities.ExecutiveSummary{
			MeetingEfficiencyScore:   entities.MeetingEfficiencyScore,
			RelatedIsolationWarnings: []entities.RelatedIsolationWarning{},
		},
		RiskAnalysis: entities.RiskAnalysis{Distribution: entities.NewRiskDistribution()},
	}
	if responses == nil {
		return data
	}

	summary := &data.ExecutiveSummary
	summary.ReviewedCount = len(responses)
	summary.TotalIsolationsReviewed = max(len(isolations), len(responses))

	counts := make(map[entities.RiskLevel]int, len(entities.RiskLevels))
	for _, resp := range responses {
		if resp.RiskLevel.IsCriticalFinding() {
			summary.CriticalFindings++
		}
		if resp.RiskLevel.Valid() {
			counts[resp.RiskLevel]++
		}
		summary.ActionItemsGenerated += len(resp.ActionItems)
	}

	for _, level := range entities.RiskLevels {
		data.RiskAnalysis.Distribution[level] = entities.RiskBucket{
			Count:      counts[level],
			Percentage: percentage(counts[level], summary.ReviewedCount),
		}
	}

	summary.RelatedIsolationWarnings = Warnings(isolations)
	return data
}

// Warnings runs the relationship detector for every isolation, in order
func Warnings(isolations []entities.Isolation) []entities.RelatedIsolationWarning {
	warnings := make([]entities.RelatedIsolationWarning, 0)
	for _, iso := range isolations {
		related := relation.FindRelated(isolations, iso)
		if len(related) == 0 {
			continue
		}
		relatedIDs := make([]string, 0, len(related))
		for _, r := range related {
			relatedIDs = append(relatedIDs, r.ID)
		}
		warnings = append(warnings, entities.RelatedIsolationWarning{
			IsolationID:          iso.ID,
			IsolationDescription: iso.Description,
			RelatedCount:         len(related),
			RelatedIDs:           relatedIDs,
		})
	}
	return warnings
}

// FromMeeting returns the statistics shown for a stored meeting: its
// pre-computed block when present, otherwise a recomputation from the
// normalized fields. ok is false when the record holds nothing to count.
func FromMeeting(m *entities.Meeting) (data entities.MeetingData, ok bool) {
	if m.MeetingData != nil {
		return *m.MeetingData, true
	}
	if len(m.Isolations) == 0 && len(m.Responses) == 0 && !m.ResponsesMalformed {
		return entities.MeetingData{}, false
	}
	return Aggregate(m.AggregateResponses(), m.Info(), m.ListedIsolations()), true
}

// percentage rounds to one decimal place
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}
