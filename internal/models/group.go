package models

// Group represents a named collection of members sharing expenses.
// The member list is fixed when the group is created.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Trip", "Roommates").
	Name string

	// Members is the ordered list of member names in this group.
	// Order is preserved from creation and drives balance iteration order.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
