package models

// Member represents a person who can belong to groups.
//
// Members are created implicitly when a group naming them is created.
// The name is the identity: unique across the whole system and case-sensitive.
type Member struct {
	// Name is the unique member identifier.
	Name string

	// GroupIDs lists the groups this member belongs to, in join order.
	GroupIDs []string

	// CreatedAt is the Unix timestamp when the member was first seen.
	CreatedAt int64
}
