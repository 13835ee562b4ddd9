package entities

// Shape names the historical record layout a meeting was recovered from
type Shape string

const (
	// ShapeEnhanced: isolations array plus responses map
	ShapeEnhanced Shape = "enhanced"
	// ShapeLegacy: responses map only, isolations rebuilt from its keys
	ShapeLegacy Shape = "legacy"
	// ShapeNested: isolations under meetingData.isolations
	ShapeNested Shape = "nested"
	// ShapeDeep: isolations recovered by the bounded recursive search
	ShapeDeep Shape = "deep"
	// ShapeEmpty: no isolation data found by any strategy
	ShapeEmpty Shape = "empty"
)

// MeetingRecordVersion is written into saved records that carry no version
const MeetingRecordVersion = "2.0"

// Meeting is the normalized view of a persisted meeting record. It is derived
// once from the raw record and never written back.
type Meeting struct {
	Date      string
	Timestamp string
	Version   string
	Attendees []string

	Isolations    []Isolation
	Responses     map[string]Response
	ResponseOrder []string

	// MeetingData is the pre-computed block of newer records, nil otherwise
	MeetingData *MeetingData

	Shape              Shape
	IsolationsDeclared bool
	ResponsesDeclared  bool
	// ResponsesMalformed: responses is present but not a mapping
	ResponsesMalformed bool
	TopLevelKeys       []string
}

// Info returns the descriptive fields handed to the aggregator
func (m *Meeting) Info() MeetingInfo {
	return MeetingInfo{Date: m.Date, Attendees: m.Attendees}
}

// AggregateResponses is the responses argument for the aggregator: nil when the
// record's responses value was not a mapping
func (m *Meeting) AggregateResponses() map[string]Response {
	if m.ResponsesMalformed {
		return nil
	}
	if m.Responses == nil {
		return map[string]Response{}
	}
	return m.Responses
}

// ListedIsolations returns the isolations present in the record itself, leaving
// out orphans synthesized from unmatched response keys
func (m *Meeting) ListedIsolations() []Isolation {
	out := make([]Isolation, 0, len(m.Isolations))
	for _, iso := range m.Isolations {
		if !iso.Orphan {
			out = append(out, iso)
		}
	}
	return out
}

// IsolationCount is the direct count shown in document headers: the declared
// isolations array when the record has one, the response keys otherwise.
func (m *Meeting) IsolationCount() int {
	if m.IsolationsDeclared {
		return len(m.ListedIsolations())
	}
	return len(m.Responses)
}

// ResponseFor returns the response recorded for an isolation ID
func (m *Meeting) ResponseFor(id string) (Response, bool) {
	resp, ok := m.Responses[id]
	return resp, ok
}
