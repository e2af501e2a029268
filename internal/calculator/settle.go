package calculator

// Settlement is a transfer that moves money from a debtor to a creditor.
type Settlement struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount float64
}

// epsilon absorbs floating point residue left after summing shares.
const epsilon = 1e-9

type position struct {
	name      string
	remaining float64
}

// Settle reduces signed balances to a list of transfers that zero them.
//
// Debtors and creditors keep the order they have in balances. Each debtor pays
// creditors in order, min(remaining debt, remaining credit) at a time, so at
// most one transfer is emitted per debtor/creditor pair. This is a greedy
// heuristic: the number of transfers is not guaranteed to be minimal.
//
// Amounts are rounded to 2 decimal places on output; remainders are tracked
// at full precision. Transfers that round to zero are dropped.
func Settle(balances []MemberBalance) []Settlement {
	var debtors, creditors []*position
	for _, b := range balances {
		switch {
		case b.NetBalance < -epsilon:
			debtors = append(debtors, &position{name: b.MemberName, remaining: -b.NetBalance})
		case b.NetBalance > epsilon:
			creditors = append(creditors, &position{name: b.MemberName, remaining: b.NetBalance})
		}
	}

	var settlements []Settlement
	for _, debtor := range debtors {
		for _, creditor := range creditors {
			if debtor.remaining <= epsilon || creditor.remaining <= epsilon {
				continue
			}

			amount := min(debtor.remaining, creditor.remaining)
			debtor.remaining -= amount
			creditor.remaining -= amount

			if rounded := Round2(amount); rounded > 0 {
				settlements = append(settlements, Settlement{
					From:   debtor.name,
					To:     creditor.name,
					Amount: rounded,
				})
			}
		}
	}

	return settlements
}
