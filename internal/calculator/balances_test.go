package calculator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

func equalExpense(t *testing.T, amount float64, payer string, members []string) ExpenseForBalance {
	t.Helper()
	allocations, err := Allocate(amount, models.SplitEqual, members, nil)
	require.NoError(t, err)
	return ExpenseForBalance{Amount: amount, PaidBy: payer, Allocations: allocations}
}

func balanceMap(balances []MemberBalance) map[string]float64 {
	out := make(map[string]float64, len(balances))
	for _, b := range balances {
		out[b.MemberName] = b.NetBalance
	}
	return out
}

func TestAggregate_EqualSplit(t *testing.T) {
	members := []string{"A", "B", "C"}
	balances, err := Aggregate(members, []ExpenseForBalance{equalExpense(t, 90, "A", members)})
	require.NoError(t, err)

	require.Len(t, balances, 3)
	got := balanceMap(balances)
	assert.InDelta(t, 60.0, got["A"], 0.001)
	assert.InDelta(t, -30.0, got["B"], 0.001)
	assert.InDelta(t, -30.0, got["C"], 0.001)
}

func TestAggregate_PercentageSplit(t *testing.T) {
	members := []string{"A", "B", "C"}
	allocations, err := Allocate(100, models.SplitPercentage, members, map[string]float64{"A": 50, "B": 30, "C": 20})
	require.NoError(t, err)

	balances, err := Aggregate(members, []ExpenseForBalance{{Amount: 100, PaidBy: "A", Allocations: allocations}})
	require.NoError(t, err)

	got := balanceMap(balances)
	assert.InDelta(t, 50.0, got["A"], 0.001)
	assert.InDelta(t, -30.0, got["B"], 0.001)
	assert.InDelta(t, -20.0, got["C"], 0.001)
}

func TestAggregate_MembersWithoutExpensesStayAtZero(t *testing.T) {
	balances, err := Aggregate([]string{"A", "B", "C", "D"}, []ExpenseForBalance{
		{Amount: 10, PaidBy: "A", Allocations: []Allocation{{Member: "B", Amount: 10}}},
	})
	require.NoError(t, err)

	require.Len(t, balances, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{
		balances[0].MemberName, balances[1].MemberName, balances[2].MemberName, balances[3].MemberName,
	})
	assert.Zero(t, balances[2].NetBalance)
	assert.Zero(t, balances[3].NetBalance)
}

func TestAggregate_NoExpenses(t *testing.T) {
	balances, err := Aggregate([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []MemberBalance{{MemberName: "A"}, {MemberName: "B"}}, balances)
}

func TestAggregate_DuplicateMembersCollapse(t *testing.T) {
	balances, err := Aggregate([]string{"A", "B", "A"}, nil)
	require.NoError(t, err)
	assert.Len(t, balances, 2)
}

func TestAggregate_UnknownMember(t *testing.T) {
	_, err := Aggregate([]string{"A"}, []ExpenseForBalance{{Amount: 5, PaidBy: "Z"}})
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = Aggregate([]string{"A"}, []ExpenseForBalance{
		{Amount: 5, PaidBy: "A", Allocations: []Allocation{{Member: "Z", Amount: 5}}},
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestAggregate_PercentageShortfallBreaksConservation(t *testing.T) {
	members := []string{"A", "B", "C"}
	allocations, err := Allocate(100, models.SplitPercentage, members, map[string]float64{"A": 50, "B": 30, "Dave": 20})
	require.NoError(t, err)

	balances, err := Aggregate(members, []ExpenseForBalance{{Amount: 100, PaidBy: "A", Allocations: allocations}})
	require.NoError(t, err)

	var sum float64
	for _, b := range balances {
		sum += b.NetBalance
	}
	// Dave's 20% was never allocated, so the payer is credited 20 that nobody owes.
	assert.InDelta(t, 20.0, sum, 0.001)
}

// randomExpenses builds count expenses over members using both split policies.
func randomExpenses(t *testing.T, r *rand.Rand, members []string, count int) []ExpenseForBalance {
	t.Helper()
	expenses := make([]ExpenseForBalance, 0, count)
	for range count {
		amount := float64(r.IntN(100000)+1) / 100
		payer := members[r.IntN(len(members))]

		var allocations []Allocation
		var err error
		if r.IntN(2) == 0 {
			allocations, err = Allocate(amount, models.SplitEqual, members, nil)
		} else {
			// Weights over all members summing to 100.
			weights := make(map[string]float64, len(members))
			left := 100.0
			for i, m := range members {
				if i == len(members)-1 {
					weights[m] = left
					break
				}
				w := float64(r.IntN(int(left) + 1))
				weights[m] = w
				left -= w
			}
			allocations, err = Allocate(amount, models.SplitPercentage, members, weights)
		}
		require.NoError(t, err)
		expenses = append(expenses, ExpenseForBalance{Amount: amount, PaidBy: payer, Allocations: allocations})
	}
	return expenses
}

func TestAggregate_Conservation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	members := []string{"Alice", "Bob", "Charlie", "Diana", "Eve"}

	for i := range 50 {
		expenses := randomExpenses(t, r, members, 1+r.IntN(20))
		balances, err := Aggregate(members, expenses)
		require.NoError(t, err)

		var sum float64
		for _, b := range balances {
			sum += b.NetBalance
		}
		assert.InDelta(t, 0.0, sum, 1e-6, "iteration %d", i)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	members := []string{"A", "B", "C", "D"}
	expenses := randomExpenses(t, r, members, 25)

	want, err := Aggregate(members, expenses)
	require.NoError(t, err)

	for range 20 {
		shuffled := make([]ExpenseForBalance, len(expenses))
		copy(shuffled, expenses)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := Aggregate(members, shuffled)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].MemberName, got[i].MemberName)
			assert.InDelta(t, want[i].NetBalance, got[i].NetBalance, 1e-9)
		}
	}
}
