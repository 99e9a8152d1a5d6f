package types

import "time"

// CurrentStateVersion is the persisted-state schema version this build
// reads and writes
const CurrentStateVersion = 1

// PersistedState is the payload handed to and received from the storage
// collaborator. The core owns the shape of Features; what to do about a
// version mismatch (e.g. offer a reset) is the caller's decision.
type PersistedState struct {
	Version     int       `json:"version"`
	Features    []Feature `json:"features"`
	LastSavedAt time.Time `json:"lastSavedAt"`
}

// NewPersistedState creates an empty state at the current version
func NewPersistedState() PersistedState {
	return PersistedState{
		Version:  CurrentStateVersion,
		Features: []Feature{},
	}
}
