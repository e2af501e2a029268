// Package api defines the request and response messages of the splitledger
// RPC services. Messages are plain structs encoded as JSON on the wire.
package api

// Group is a named collection of members.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

// Allocation is one member's share of an expense.
type Allocation struct {
	Member string  `json:"member"`
	Amount float64 `json:"amount"`
}

// Expense is an amount paid by one member and split across the group.
type Expense struct {
	ID          string       `json:"id"`
	GroupID     string       `json:"group_id"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
	PaidBy      string       `json:"paid_by"`
	SplitType   string       `json:"split_type"`
	Allocations []Allocation `json:"allocations"`
	CreatedAt   int64        `json:"created_at"`
}

// Settlement is a suggested transfer between two members.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group    *Group     `json:"group"`
	Expenses []*Expense `json:"expenses"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id"`
}

// GetGroupBalancesResponse carries balances rounded to 2 decimals, keyed by
// member name. Positive means the member is owed money.
type GetGroupBalancesResponse struct {
	GroupName   string             `json:"group_name"`
	Balances    map[string]float64 `json:"balances"`
	Settlements []*Settlement      `json:"settlements"`
}

// CreateExpenseRequest records a new expense. Splits maps member names to
// percentages and is only read when SplitType is "percentage".
type CreateExpenseRequest struct {
	GroupID     string             `json:"group_id"`
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	PaidBy      string             `json:"paid_by"`
	SplitType   string             `json:"split_type"`
	Splits      map[string]float64 `json:"splits,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GetMemberBalancesRequest struct {
	Member string `json:"member"`
}

// GetMemberBalancesResponse rolls a member's balances up across all their groups.
type GetMemberBalancesResponse struct {
	Member     string  `json:"member"`
	TotalOwed  float64 `json:"total_owed"`
	TotalOwing float64 `json:"total_owing"`
	NetBalance float64 `json:"net_balance"`
}
