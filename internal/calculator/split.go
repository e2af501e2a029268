package calculator

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// Allocation is one member's share of an expense.
type Allocation struct {
	Member string
	Amount float64
}

// Allocate divides amount among participants according to policy.
//
// For models.SplitEqual every participant receives amount/len(participants).
// No remainder is redistributed, so the shares may differ from amount by
// floating point residue.
//
// For models.SplitPercentage each participant with an entry in weights receives
// amount*weight/100, in participant order. Weights for names that are not
// participants are ignored and the weights are not required to sum to 100, so
// the shares may cover less (or more) than amount.
func Allocate(amount float64, policy models.SplitPolicy, participants []string, weights map[string]float64) ([]Allocation, error) {
	switch policy {
	case models.SplitEqual:
		if len(participants) == 0 {
			return nil, ErrEmptyParticipants
		}
		share := amount / float64(len(participants))
		allocations := make([]Allocation, len(participants))
		for i, p := range participants {
			allocations[i] = Allocation{Member: p, Amount: share}
		}
		return allocations, nil

	case models.SplitPercentage:
		allocations := make([]Allocation, 0, len(weights))
		for _, p := range participants {
			pct, ok := weights[p]
			if !ok {
				continue
			}
			allocations = append(allocations, Allocation{Member: p, Amount: amount * pct / 100})
		}
		return allocations, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}
}
