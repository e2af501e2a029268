package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// memberIndex builds a keyed lookup of group members so payer checks don't scan.
func memberIndex(members []string) map[string]struct{} {
	index := make(map[string]struct{}, len(members))
	for _, m := range members {
		index[m] = struct{}{}
	}
	return index
}

// CreateExpense records an expense and allocates it across the group's members.
// Nothing is stored unless the payer is a member and the split succeeds.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	msg := req.Msg
	slog.Info("CreateExpense request received",
		"group_id", msg.GroupID,
		"amount", msg.Amount,
		"paid_by", msg.PaidBy,
		"split_type", msg.SplitType,
	)

	if msg.GroupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("group_id required"))
	}
	if msg.Amount <= 0 || math.IsInf(msg.Amount, 0) || math.IsNaN(msg.Amount) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive, got %v", msg.Amount))
	}

	group, err := s.store.GetGroup(ctx, msg.GroupID)
	if err != nil {
		slog.Error("CreateExpense failed - group not found", "group_id", msg.GroupID, "error", err)
		return nil, lookupError(err, calculator.ErrGroupNotFound, msg.GroupID)
	}

	if _, ok := memberIndex(group.Members)[msg.PaidBy]; !ok {
		err := fmt.Errorf("%w: %q", calculator.ErrPayerNotInGroup, msg.PaidBy)
		slog.Warn("CreateExpense rejected", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	policy := models.SplitPolicy(strings.ToLower(msg.SplitType))
	if !policy.Valid() {
		err := fmt.Errorf("%w: %q", calculator.ErrInvalidPolicy, msg.SplitType)
		slog.Warn("CreateExpense rejected", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	shares, err := calculator.Allocate(msg.Amount, policy, group.Members, msg.Splits)
	if err != nil {
		slog.Warn("CreateExpense rejected - allocation failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		GroupID:     group.ID,
		Description: msg.Description,
		Amount:      msg.Amount,
		PaidBy:      msg.PaidBy,
		SplitType:   policy,
		Allocations: make([]models.Allocation, len(shares)),
	}
	for i, sh := range shares {
		expense.Allocations[i] = models.Allocation{Member: sh.Member, Amount: sh.Amount}
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", group.ID,
		"allocations_count", len(expense.Allocations),
	)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses returns a group's expenses, oldest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	groupID := req.Msg.GroupID
	slog.Info("ListExpenses request received", "group_id", groupID)

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		slog.Error("ListExpenses failed - group not found", "group_id", groupID, "error", err)
		return nil, lookupError(err, calculator.ErrGroupNotFound, groupID)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("ListExpenses successful", "group_id", groupID, "count", len(expenses))

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: toAPIExpenses(expenses),
	}), nil
}
