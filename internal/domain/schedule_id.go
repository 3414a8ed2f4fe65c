package domain

import "strings"

// IDOrigin tells which store assigned a schedule identifier
type IDOrigin int

const (
	// OriginRemote identifier assigned by the remote database
	OriginRemote IDOrigin = iota
	// OriginLocal identifier generated on the device for a fallback record
	OriginLocal
)

// localIDPrefix marks local-origin identifiers on the wire.
// Remote and local ids therefore never collide, which is what allows
// the merged list view to skip deduplication.
const localIDPrefix = "local-"

// ScheduleID is a tagged schedule identifier.
// Keeping the origin as a field (instead of string-parsing a prefix at every
// call site) lets the update path reject local-origin ids in a type-checked way.
type ScheduleID struct {
	Origin IDOrigin
	Value  string
}

// NewRemoteScheduleID wraps an identifier assigned by the remote store
func NewRemoteScheduleID(value string) ScheduleID {
	return ScheduleID{Origin: OriginRemote, Value: value}
}

// NewLocalScheduleID wraps a locally generated identifier
func NewLocalScheduleID(value string) ScheduleID {
	return ScheduleID{Origin: OriginLocal, Value: value}
}

// ParseScheduleID recovers a ScheduleID from its wire form
func ParseScheduleID(s string) ScheduleID {
	if rest, ok := strings.CutPrefix(s, localIDPrefix); ok {
		return NewLocalScheduleID(rest)
	}
	return NewRemoteScheduleID(s)
}

// IsLocal returns true for local-origin identifiers
func (id ScheduleID) IsLocal() bool {
	return id.Origin == OriginLocal
}

// IsZero returns true if the identifier is unset
func (id ScheduleID) IsZero() bool {
	return id.Value == ""
}

// String returns the wire form: the raw value for remote ids,
// the prefixed value for local ids
func (id ScheduleID) String() string {
	if id.Origin == OriginLocal {
		return localIDPrefix + id.Value
	}
	return id.Value
}
