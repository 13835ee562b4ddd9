package entities

import (
	"time"

	"gorm.io/datatypes"
)

// StateRecord is one persisted collection in the relational backend.
// Payload uses the json column type (not jsonb) so documents come back byte-for-byte.
type StateRecord struct {
	Collection string         `gorm:"type:varchar(64);primary_key" json:"collection"`
	Payload    datatypes.JSON `gorm:"type:json;not null" json:"payload"`
	UpdatedAt  time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for StateRecord
func (StateRecord) TableName() string {
	return "persisted_state"
}
