package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// loadSnapshot reads a group and all its expenses into the calculator's input form.
func loadSnapshot(ctx context.Context, store storage.Store, groupID string) (*calculator.GroupSnapshot, error) {
	group, err := store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	expenses, err := store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for group %s: %w", groupID, err)
	}

	snapshot := &calculator.GroupSnapshot{
		ID:       group.ID,
		Name:     group.Name,
		Members:  group.Members,
		Expenses: make([]calculator.ExpenseForBalance, len(expenses)),
	}
	for i, e := range expenses {
		allocations := make([]calculator.Allocation, len(e.Allocations))
		for j, a := range e.Allocations {
			allocations[j] = calculator.Allocation{Member: a.Member, Amount: a.Amount}
		}
		snapshot.Expenses[i] = calculator.ExpenseForBalance{
			Amount:      e.Amount,
			PaidBy:      e.PaidBy,
			Allocations: allocations,
		}
	}

	return snapshot, nil
}

// lookupError maps a storage lookup failure to a Connect error, tagging
// missing records with the given domain error.
func lookupError(err error, notFound error, key string) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", notFound, key))
	}
	return connect.NewError(connect.CodeInternal, err)
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		Name:      g.Name,
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	allocations := make([]api.Allocation, len(e.Allocations))
	for i, a := range e.Allocations {
		allocations[i] = api.Allocation{Member: a.Member, Amount: calculator.Round2(a.Amount)}
	}
	return &api.Expense{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		SplitType:   string(e.SplitType),
		Allocations: allocations,
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIExpenses(expenses []*models.Expense) []*api.Expense {
	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return out
}
