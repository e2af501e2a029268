package calculator

import "fmt"

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	Amount      float64
	PaidBy      string
	Allocations []Allocation
}

// MemberBalance represents the signed net balance of one group member.
type MemberBalance struct {
	MemberName string
	NetBalance float64 // Positive = owed money, Negative = owes money
}

// Aggregate folds expenses into one signed balance per group member.
//
// The payer of each expense is credited the full amount and every allocated
// member is debited their share. The result has exactly one entry per distinct
// member, in the order members are given, including members whose balance is 0.
// Expense order does not affect the result.
func Aggregate(members []string, expenses []ExpenseForBalance) ([]MemberBalance, error) {
	index := make(map[string]int, len(members))
	balances := make([]MemberBalance, 0, len(members))
	for _, m := range members {
		if _, seen := index[m]; seen {
			continue
		}
		index[m] = len(balances)
		balances = append(balances, MemberBalance{MemberName: m})
	}

	for _, e := range expenses {
		i, ok := index[e.PaidBy]
		if !ok {
			return nil, fmt.Errorf("%w: payer %q", ErrMemberNotFound, e.PaidBy)
		}
		balances[i].NetBalance += e.Amount

		for _, a := range e.Allocations {
			j, ok := index[a.Member]
			if !ok {
				return nil, fmt.Errorf("%w: allocation member %q", ErrMemberNotFound, a.Member)
			}
			balances[j].NetBalance -= a.Amount
		}
	}

	return balances, nil
}
