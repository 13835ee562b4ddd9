// Package shape turns persisted meeting records of any historical layout into
// the normalized entities.Meeting consumed by statistics and exports.
package shape

import (
	"github.com/tidwall/gjson"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
)

// Normalize parses a raw meeting record. Only invalid JSON is an error; every
// other oddity degrades to defaults.
func Normalize(raw []byte) (*entities.Meeting, error) {
	if !gjson.ValidBytes(raw) {
		return nil, entities.ErrMalformedMeeting
	}
	return FromResult(gjson.ParseBytes(raw)), nil
}

// FromResult normalizes an already parsed record
func FromResult(doc gjson.Result) *entities.Meeting {
	m := &entities.Meeting{
		Responses: make(map[string]entities.Response),
		Shape:     entities.ShapeEmpty,
	}
	if !doc.IsObject() {
		return m
	}

	doc.ForEach(func(key, _ gjson.Result) bool {
		m.TopLevelKeys = append(m.TopLevelKeys, key.String())
		return true
	})

	m.Date = Text(Lookup(doc, "date"))
	m.Timestamp = Text(Lookup(doc, "timestamp"))
	m.Version = Text(Lookup(doc, "version"))
	m.Attendees = Strings(Lookup(doc, "attendees"))

	switch responses := Lookup(doc, "responses"); {
	case responses.IsObject():
		m.ResponsesDeclared = true
		m.Responses, m.ResponseOrder = ParseResponses(responses)
	case responses.Exists() && responses.Type != gjson.Null:
		m.ResponsesMalformed = true
	}

	meetingData := Lookup(doc, "meetingData")
	m.MeetingData = ParseMeetingData(meetingData)

	if isolations := Lookup(doc, "isolations"); isolations.IsArray() {
		m.IsolationsDeclared = true
		m.Isolations = ParseIsolations(isolations)
	}

	switch {
	case len(m.Isolations) > 0:
		m.Shape = entities.ShapeEnhanced
		m.Isolations = withOrphans(m.Isolations, m.ResponseOrder)

	case len(m.ResponseOrder) > 0:
		m.Shape = entities.ShapeLegacy
		m.Isolations = reconstruct(m.Responses, m.ResponseOrder)

	default:
		if nested := ParseIsolations(Lookup(meetingData, "isolations")); len(nested) > 0 {
			m.Shape = entities.ShapeNested
			if !m.ResponsesDeclared && !m.ResponsesMalformed {
				m.Responses, m.ResponseOrder = ParseResponses(Lookup(meetingData, "responses"))
			}
			m.Isolations = withOrphans(nested, m.ResponseOrder)
			return m
		}
		if found, responses := DeepSearch(doc, MaxSearchDepth); len(found) > 0 {
			m.Shape = entities.ShapeDeep
			m.Isolations = found
			for _, iso := range found {
				if _, ok := m.Responses[iso.ID]; ok {
					continue
				}
				if resp, ok := responses[iso.ID]; ok {
					m.Responses[iso.ID] = resp
					m.ResponseOrder = append(m.ResponseOrder, iso.ID)
				}
			}
		}
	}
	return m
}

// withOrphans appends response keys that match no isolation as orphan isolations
func withOrphans(isolations []entities.Isolation, responseOrder []string) []entities.Isolation {
	known := make(map[string]bool, len(isolations))
	for _, iso := range isolations {
		known[iso.ID] = true
	}
	for _, id := range responseOrder {
		if !known[id] {
			isolations = append(isolations, entities.Isolation{ID: id, Orphan: true})
			known[id] = true
		}
	}
	return isolations
}

// reconstruct rebuilds the isolation list of a map-only record from its response keys
func reconstruct(responses map[string]entities.Response, order []string) []entities.Isolation {
	out := make([]entities.Isolation, 0, len(order))
	for _, id := range order {
		resp := responses[id]
		out = append(out, entities.Isolation{
			ID:               id,
			Description:      resp.Description,
			PlannedStartDate: resp.PlannedStartDate,
		})
	}
	return out
}
