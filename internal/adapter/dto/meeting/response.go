package meeting

import "github.com/johnquangdev/lti-omt/internal/domain/entities"

// RelatedResponse lists the isolations sharing the target's system code
type RelatedResponse struct {
	Target     string         `json:"target"`
	SystemCode string         `json:"systemCode,omitempty"`
	Related    []IsolationRef `json:"related"`
}

// StatisticsResponse is the derived statistics of a meeting record
type StatisticsResponse struct {
	Shape       entities.Shape        `json:"shape"`
	Precomputed bool                  `json:"precomputed"`
	MeetingData *entities.MeetingData `json:"meetingData"`
}

// SaveMeetingResponse reports a stored meeting
type SaveMeetingResponse struct {
	Index       int                  `json:"index"`
	MeetingData entities.MeetingData `json:"meetingData"`
}
