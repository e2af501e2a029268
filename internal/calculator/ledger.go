package calculator

import "fmt"

// GroupResult holds the derived balances and settlements of one group.
type GroupResult struct {
	Balances    []MemberBalance
	Settlements []Settlement
}

// GroupBalances aggregates a group's expenses and settles the resulting balances.
func GroupBalances(members []string, expenses []ExpenseForBalance) (*GroupResult, error) {
	balances, err := Aggregate(members, expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}
	return &GroupResult{
		Balances:    balances,
		Settlements: Settle(balances),
	}, nil
}

// GroupSnapshot is an in-memory view of one group and all of its expenses.
type GroupSnapshot struct {
	ID       string
	Name     string
	Members  []string
	Expenses []ExpenseForBalance
}

// MemberSummary is a member's position rolled up across all their groups.
type MemberSummary struct {
	Member     string
	TotalOwed  float64 // Sum of positive group balances
	TotalOwing float64 // Sum of absolute negative group balances
	NetBalance float64 // TotalOwed - TotalOwing
}

// Ledger answers balance queries over a fixed set of group snapshots.
//
// It keeps the many-to-many membership relation as two explicit indexes,
// group to members and member to groups, both built once in NewLedger.
type Ledger struct {
	groups       map[string]GroupSnapshot
	memberGroups map[string][]string
}

// NewLedger indexes the given snapshots. Later snapshots with a duplicate ID
// replace earlier ones.
func NewLedger(snapshots []GroupSnapshot) *Ledger {
	l := &Ledger{
		groups:       make(map[string]GroupSnapshot, len(snapshots)),
		memberGroups: make(map[string][]string),
	}
	for _, s := range snapshots {
		if _, dup := l.groups[s.ID]; dup {
			l.unindex(s.ID)
		}
		l.groups[s.ID] = s
		seen := make(map[string]struct{}, len(s.Members))
		for _, m := range s.Members {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			l.memberGroups[m] = append(l.memberGroups[m], s.ID)
		}
	}
	return l
}

func (l *Ledger) unindex(groupID string) {
	for _, m := range l.groups[groupID].Members {
		ids := l.memberGroups[m]
		kept := ids[:0]
		for _, id := range ids {
			if id != groupID {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(l.memberGroups, m)
		} else {
			l.memberGroups[m] = kept
		}
	}
}

// GroupBalances computes balances and settlements for one indexed group.
func (l *Ledger) GroupBalances(groupID string) (*GroupResult, error) {
	g, ok := l.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	return GroupBalances(g.Members, g.Expenses)
}

// MemberBalances rolls the member's balance in every indexed group up into
// totals. Values are rounded to 2 decimal places and NetBalance is always
// TotalOwed - TotalOwing.
func (l *Ledger) MemberBalances(member string) (*MemberSummary, error) {
	groupIDs, ok := l.memberGroups[member]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, member)
	}

	var owed, owing float64
	for _, id := range groupIDs {
		result, err := l.GroupBalances(id)
		if err != nil {
			return nil, err
		}
		for _, b := range result.Balances {
			if b.MemberName != member {
				continue
			}
			if b.NetBalance > 0 {
				owed += b.NetBalance
			} else {
				owing += -b.NetBalance
			}
			break
		}
	}

	// Net comes from the rounded totals so the three fields always agree.
	totalOwed, totalOwing := Round2(owed), Round2(owing)
	return &MemberSummary{
		Member:     member,
		TotalOwed:  totalOwed,
		TotalOwing: totalOwing,
		NetBalance: Round2(totalOwed - totalOwing),
	}, nil
}
