package entities

import "encoding/json"

// IsolationPrefix is the identifier token every conforming isolation ID starts with
const IsolationPrefix = "CAHE"

// Isolation represents one physical or process isolation under review.
// Description and PlannedStartDate are resolved from the first populated legacy
// synonym; Raw keeps the source object untouched.
type Isolation struct {
	ID               string          `json:"id"`
	Description      string          `json:"description,omitempty"`
	PlannedStartDate string          `json:"plannedStartDate,omitempty"`
	Orphan           bool            `json:"orphan,omitempty"`
	Raw              json.RawMessage `json:"-"`
}
