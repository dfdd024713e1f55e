package domain

import "github.com/google/uuid"

// StaticID is the opaque identifier used across the member network for
// companies and persisted records. It is generated once on creation and
// immutable afterwards.
//
// Usage: construct new record IDs via NewStaticID; wrap external input via a
// plain conversion at trust boundaries (the value is opaque, not validated
// beyond emptiness).
type StaticID string

// NewStaticID generates a fresh record identifier.
func NewStaticID() StaticID {
	return StaticID(uuid.NewString())
}

// IsEmpty reports whether the identifier is unset.
func (s StaticID) IsEmpty() bool {
	return s == ""
}

func (s StaticID) String() string {
	return string(s)
}
