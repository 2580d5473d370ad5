// internal/types/types.go
package types

import "github.com/google/uuid"

// EntityID uniquely identifies a tower or an enemy for the lifetime of a process.
type EntityID string

// NewEntityID returns a fresh id with a readable prefix, e.g. "dev-3f1c...".
func NewEntityID(prefix string) EntityID {
	return EntityID(prefix + "-" + uuid.New().String())
}

// NewSessionID identifies one run of a level; reset starts a new one.
func NewSessionID() string {
	return uuid.New().String()
}
