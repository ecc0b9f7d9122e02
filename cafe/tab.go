package cafe

import "github.com/google/uuid"

// TabID identifies a tab for its whole lifecycle.
type TabID = uuid.UUID

// NewTabID generates a fresh random tab identifier.
func NewTabID() TabID {
	return uuid.New()
}

// Tab is the identity of the aggregate.
type Tab struct {
	ID          TabID `json:"id"`
	TableNumber int   `json:"table_number"`
}

// NewTab opens a new identity for the given table.
func NewTab(tableNumber int) Tab {
	return Tab{ID: NewTabID(), TableNumber: tableNumber}
}
