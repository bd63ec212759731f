// Package models defines the records the storage layer persists.
package models

import "github.com/julianstephens/zoneline/internal/tztable"

// ZoneSource says where a zone's transition table came from.
type ZoneSource string

const (
	// SourceIANA: extracted from the system tz database by name.
	SourceIANA ZoneSource = "iana"
	// SourceFixed: a single constant offset, no transitions.
	SourceFixed ZoneSource = "fixed"
	// SourceCustom: a user-supplied table imported from JSON.
	SourceCustom ZoneSource = "custom"
)

// ZoneRecord is a named transition table kept in the store. Name is the
// lookup key the CLI and TUI use; ID is the stable identity that survives
// renames.
type ZoneRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Source    ZoneSource     `json:"source"`
	Table     *tztable.Table `json:"table"`
	CreatedAt string         `json:"created_at"`           // RFC3339
	DeletedAt *string        `json:"deleted_at,omitempty"` // RFC3339, soft delete
}
