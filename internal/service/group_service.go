package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group, creating members that do not exist yet.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	if len(req.Msg.Members) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("at least one member required"))
	}
	for _, m := range req.Msg.Members {
		if strings.TrimSpace(m) == "" {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("member names cannot be empty"))
		}
	}

	group := &models.Group{
		Name:    req.Msg.Name,
		Members: req.Msg.Members,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{
		Group: toAPIGroup(group),
	}), nil
}

// GetGroup retrieves a group by ID together with its expenses.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	groupID := req.Msg.GroupID
	slog.Info("GetGroup request received", "group_id", groupID)

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", groupID, "error", err)
		return nil, lookupError(err, calculator.ErrGroupNotFound, groupID)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetGroup failed - could not list expenses", "group_id", groupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&api.GetGroupResponse{
		Group:    toAPIGroup(group),
		Expenses: toAPIExpenses(expenses),
	}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	apiGroups := make([]*api.Group, len(groups))
	for i, group := range groups {
		apiGroups[i] = toAPIGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{
		Groups: apiGroups,
	}), nil
}

// GetGroupBalances calculates balances and settlements across all expenses in a group.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	groupID := req.Msg.GroupID
	slog.Info("GetGroupBalances request received", "group_id", groupID)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("group_id required"))
	}

	snapshot, err := loadSnapshot(ctx, s.store, groupID)
	if err != nil {
		slog.Error("GetGroupBalances failed - could not load group", "group_id", groupID, "error", err)
		return nil, lookupError(err, calculator.ErrGroupNotFound, groupID)
	}

	result, err := calculator.GroupBalances(snapshot.Members, snapshot.Expenses)
	if err != nil {
		slog.Error("GetGroupBalances failed - calculation error", "group_id", groupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	balances := make(map[string]float64, len(result.Balances))
	for _, b := range result.Balances {
		balances[b.MemberName] = calculator.Round2(b.NetBalance)
	}

	settlements := make([]*api.Settlement, len(result.Settlements))
	for i, st := range result.Settlements {
		settlements[i] = &api.Settlement{
			From:   st.From,
			To:     st.To,
			Amount: st.Amount,
		}
	}

	slog.Info("GetGroupBalances successful",
		"group_id", groupID,
		"expenses_count", len(snapshot.Expenses),
		"members_count", len(result.Balances),
		"settlements_count", len(settlements),
	)

	return connect.NewResponse(&api.GetGroupBalancesResponse{
		GroupName:   snapshot.Name,
		Balances:    balances,
		Settlements: settlements,
	}), nil
}
