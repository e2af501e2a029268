package models

// SplitPolicy controls how an expense amount is divided into allocations.
type SplitPolicy string

const (
	// SplitEqual divides the amount evenly across every group member.
	SplitEqual SplitPolicy = "equal"

	// SplitPercentage divides the amount by per-member percentages.
	SplitPercentage SplitPolicy = "percentage"
)

// Valid reports whether p is a known policy.
func (p SplitPolicy) Valid() bool {
	return p == SplitEqual || p == SplitPercentage
}

// Expense represents an amount paid by one member on behalf of a group.
// Expenses and their allocations are created together and never mutated.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a human-readable label (e.g., "Dinner", "Fuel").
	Description string

	// Amount is the total paid. Always positive.
	Amount float64

	// PaidBy is the name of the paying member. Must be a member of the group.
	PaidBy string

	// SplitType is the policy that produced Allocations.
	SplitType SplitPolicy

	// Allocations are the per-member shares of Amount.
	// They sum to Amount within floating point tolerance, except for percentage
	// splits whose weights do not cover the whole amount.
	Allocations []Allocation

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Allocation represents one member's share of one expense.
type Allocation struct {
	// Member is the name of the member owing this share.
	Member string

	// Amount is the member's share.
	Amount float64
}
