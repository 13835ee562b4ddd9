package entities

// Collection names a persisted key-value collection
type Collection string

const (
	CollectionSavedMeetings            Collection = "savedMeetings"
	CollectionSavedPeople              Collection = "savedPeople"
	CollectionMeetingPeople            Collection = "meetingPeople"
	CollectionCurrentMeeting           Collection = "currentMeeting"
	CollectionCurrentMeetingInfo       Collection = "currentMeetingInfo"
	CollectionCurrentMeetingIsolations Collection = "currentMeetingIsolations"
	CollectionCurrentMeetingResponses  Collection = "currentMeetingResponses"

	// CollectionPastMeetings is the legacy name of savedMeetings, read only by the migration
	CollectionPastMeetings Collection = "pastMeetings"
)

// WorkingSetCollections may be read and replaced directly through the state API
var WorkingSetCollections = []Collection{
	CollectionSavedPeople,
	CollectionMeetingPeople,
	CollectionCurrentMeeting,
	CollectionCurrentMeetingInfo,
	CollectionCurrentMeetingIsolations,
	CollectionCurrentMeetingResponses,
}

// IsWorkingSet reports whether c is writable through the state API
func (c Collection) IsWorkingSet() bool {
	for _, ws := range WorkingSetCollections {
		if ws == c {
			return true
		}
	}
	return false
}

// IsPeople reports whether c holds attendee names
func (c Collection) IsPeople() bool {
	return c == CollectionSavedPeople || c == CollectionMeetingPeople
}
