package calculator

import "errors"

var (
	// ErrInvalidPolicy is returned when a split policy is neither equal nor percentage.
	ErrInvalidPolicy = errors.New("invalid split policy")

	// ErrEmptyParticipants is returned when an equal split has nobody to divide by.
	ErrEmptyParticipants = errors.New("must have at least one participant")

	// ErrPayerNotInGroup is returned when an expense payer is not a group member.
	ErrPayerNotInGroup = errors.New("payer is not a member of the group")

	// ErrMemberNotFound is returned when a member name is unknown.
	ErrMemberNotFound = errors.New("member not found")

	// ErrGroupNotFound is returned when a group ID is unknown.
	ErrGroupNotFound = errors.New("group not found")
)
