package presenter

import (
	"github.com/johnquangdev/lti-omt/internal/adapter/dto/meeting"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/relation"
)

// ToIsolations converts request references to isolation entities
func ToIsolations(refs []meeting.IsolationRef) []entities.Isolation {
	out := make([]entities.Isolation, len(refs))
	for i, ref := range refs {
		out[i] = entities.Isolation{ID: ref.ID, Description: ref.Description}
	}
	return out
}

// ToIsolationRefs converts isolation entities to response references
func ToIsolationRefs(isolations []entities.Isolation) []meeting.IsolationRef {
	out := make([]meeting.IsolationRef, len(isolations))
	for i, iso := range isolations {
		out[i] = meeting.IsolationRef{ID: iso.ID, Description: iso.Description}
	}
	return out
}

// ToRelatedResponse builds the relationship query result for target
func ToRelatedResponse(target entities.Isolation, related []entities.Isolation) *meeting.RelatedResponse {
	code, _ := relation.SystemCode(target.ID)
	return &meeting.RelatedResponse{
		Target:     target.ID,
		SystemCode: code,
		Related:    ToIsolationRefs(related),
	}
}

// ToStatisticsResponse wraps derived statistics with the shape they came from
func ToStatisticsResponse(m *entities.Meeting, data *entities.MeetingData) *meeting.StatisticsResponse {
	return &meeting.StatisticsResponse{
		Shape:       m.Shape,
		Precomputed: m.MeetingData != nil,
		MeetingData: data,
	}
}
