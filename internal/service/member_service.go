package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.MemberServiceHandler = (*MemberService)(nil)

// MemberService implements the Connect MemberService
type MemberService struct {
	store  storage.Store
	fanout int
}

// NewMemberService creates a new MemberService. fanout bounds how many of a
// member's groups are loaded concurrently; values below 1 mean one at a time.
func NewMemberService(store storage.Store, fanout int) *MemberService {
	return &MemberService{store: store, fanout: max(fanout, 1)}
}

// GetMemberBalances totals what a member is owed and owes across all their groups.
// Any name without a stored member, including the empty name, is not found.
func (s *MemberService) GetMemberBalances(ctx context.Context, req *connect.Request[api.GetMemberBalancesRequest]) (*connect.Response[api.GetMemberBalancesResponse], error) {
	name := req.Msg.Member
	slog.Info("GetMemberBalances request received", "member", name)

	member, err := s.store.GetMember(ctx, name)
	if err != nil {
		slog.Error("GetMemberBalances failed - member not found", "member", name, "error", err)
		return nil, lookupError(err, calculator.ErrMemberNotFound, name)
	}

	snapshots := make([]calculator.GroupSnapshot, len(member.GroupIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, groupID := range member.GroupIDs {
		g.Go(func() error {
			snapshot, err := loadSnapshot(gctx, s.store, groupID)
			if err != nil {
				return err
			}
			snapshots[i] = *snapshot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("GetMemberBalances failed - could not load groups", "member", name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.GetMemberBalancesResponse{Member: name}
	if len(snapshots) > 0 {
		summary, err := calculator.NewLedger(snapshots).MemberBalances(name)
		if err != nil {
			slog.Error("GetMemberBalances failed - calculation error", "member", name, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		resp.TotalOwed = summary.TotalOwed
		resp.TotalOwing = summary.TotalOwing
		resp.NetBalance = summary.NetBalance
	}

	slog.Info("GetMemberBalances successful",
		"member", name,
		"groups_count", len(snapshots),
		"net_balance", resp.NetBalance,
	)

	return connect.NewResponse(resp), nil
}
