package entities

import (
	"bytes"
	"encoding/json"
)

// BackupVersion tags envelopes produced by this service
const BackupVersion = "2.0"

// BackupData is a verbatim snapshot of the backed-up collections
type BackupData struct {
	SavedPeople    json.RawMessage `json:"savedPeople"`
	MeetingPeople  json.RawMessage `json:"meetingPeople"`
	SavedMeetings  json.RawMessage `json:"savedMeetings"`
	CurrentMeeting json.RawMessage `json:"currentMeeting"`
}

// BackupEnvelope wraps a snapshot for export and import
type BackupEnvelope struct {
	Timestamp string     `json:"timestamp"`
	Version   string     `json:"version"`
	Data      BackupData `json:"data"`
}

// BackupCollections maps envelope data keys to the collections they snapshot
var BackupCollections = []Collection{
	CollectionSavedPeople,
	CollectionMeetingPeople,
	CollectionSavedMeetings,
	CollectionCurrentMeeting,
}

// Get returns the snapshot held for a collection
func (d *BackupData) Get(c Collection) json.RawMessage {
	switch c {
	case CollectionSavedPeople:
		return d.SavedPeople
	case CollectionMeetingPeople:
		return d.MeetingPeople
	case CollectionSavedMeetings:
		return d.SavedMeetings
	case CollectionCurrentMeeting:
		return d.CurrentMeeting
	}
	return nil
}

// Set stores the snapshot for a collection
func (d *BackupData) Set(c Collection, raw json.RawMessage) {
	switch c {
	case CollectionSavedPeople:
		d.SavedPeople = raw
	case CollectionMeetingPeople:
		d.MeetingPeople = raw
	case CollectionSavedMeetings:
		d.SavedMeetings = raw
	case CollectionCurrentMeeting:
		d.CurrentMeeting = raw
	}
}

// IsAbsent reports whether a snapshot stands for a collection that was never stored
func IsAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
