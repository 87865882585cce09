package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/settlement"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store       storage.Store
	settlements *settlement.Coordinator
}

// NewGroupService creates a new GroupService. Roster changes and group deletion
// go through settlements so that cached settlements are invalidated.
func NewGroupService(store storage.Store, settlements *settlement.Coordinator) *GroupService {
	return &GroupService{store: store, settlements: settlements}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"title", req.Msg.Title,
		"participants_count", len(req.Msg.Participants),
	)

	title := strings.TrimSpace(req.Msg.Title)
	if title == "" {
		return nil, invalidArgument("title required")
	}
	currency, err := normalizeCurrency(req.Msg.Currency)
	if err != nil {
		return nil, err
	}
	participants, err := participantNames("participants", req.Msg.Participants)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Title:        title,
		Currency:     currency,
		Participants: participants,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	if err := requireID("group_id", req.Msg.GroupId); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	pbGroups := make([]*pb.Group, len(groups))
	for i, group := range groups {
		pbGroups[i] = toProtoGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&pb.ListGroupsResponse{Groups: pbGroups}), nil
}

// UpdateGroup renames a group. The settlement does not depend on the title.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[pb.UpdateGroupRequest]) (*connect.Response[pb.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupId, "title", req.Msg.Title)

	if err := requireID("group_id", req.Msg.GroupId); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Msg.Title)
	if title == "" {
		return nil, invalidArgument("title required")
	}

	if err := s.store.UpdateGroupTitle(ctx, req.Msg.GroupId, title); err != nil {
		slog.Error("UpdateGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("Failed to fetch updated group", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&pb.UpdateGroupResponse{Group: toProtoGroup(group)}), nil
}

// DeleteGroup removes a group by ID.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[pb.DeleteGroupRequest]) (*connect.Response[pb.DeleteGroupResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("DeleteGroup request received", "group_id", groupID)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}

	err := s.settlements.Mutate(ctx, groupID, func(ctx context.Context) error {
		return s.store.DeleteGroup(ctx, groupID)
	})
	if err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group deleted", "group_id", groupID)

	return connect.NewResponse(&pb.DeleteGroupResponse{}), nil
}

// AddParticipant appends a participant to the roster. Adding an existing
// participant succeeds without changes.
func (s *GroupService) AddParticipant(ctx context.Context, req *connect.Request[pb.AddParticipantRequest]) (*connect.Response[pb.AddParticipantResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("AddParticipant request received", "group_id", groupID, "name", req.Msg.Name)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name required")
	}

	err := s.settlements.Mutate(ctx, groupID, func(ctx context.Context) error {
		return s.store.AddParticipant(ctx, groupID, models.ParticipantID(name))
	})
	if err != nil {
		slog.Error("AddParticipant failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant added", "group_id", groupID, "name", name)

	return connect.NewResponse(&pb.AddParticipantResponse{Group: toProtoGroup(group)}), nil
}

// RemoveParticipant drops a participant from the roster. Expenses that
// reference the participant are kept and still count towards the settlement.
func (s *GroupService) RemoveParticipant(ctx context.Context, req *connect.Request[pb.RemoveParticipantRequest]) (*connect.Response[pb.RemoveParticipantResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("RemoveParticipant request received", "group_id", groupID, "name", req.Msg.Name)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}
	name := models.ParticipantID(strings.TrimSpace(req.Msg.Name))
	if name == "" {
		return nil, invalidArgument("name required")
	}

	err := s.settlements.Mutate(ctx, groupID, func(ctx context.Context) error {
		group, err := s.store.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if !group.HasParticipant(name) {
			return connect.NewError(connect.CodeNotFound, fmt.Errorf("participant %s is not in group %s", name, groupID))
		}
		return s.store.RemoveParticipant(ctx, groupID, name)
	})
	if err != nil {
		slog.Error("RemoveParticipant failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant removed", "group_id", groupID, "name", name)

	return connect.NewResponse(&pb.RemoveParticipantResponse{Group: toProtoGroup(group)}), nil
}

// ListExpenses retrieves the expenses of a group, newest first.
func (s *GroupService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("ListExpenses request received", "group_id", groupID)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	pbExpenses := make([]*pb.Expense, len(expenses))
	for i, expense := range expenses {
		pbExpenses[i] = toProtoExpense(expense)
	}

	slog.Info("ListExpenses successful", "group_id", groupID, "count", len(expenses))

	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: pbExpenses}), nil
}

// GetBalance returns the settlement of a group: the payments that bring every
// balance to zero. Cached settlements are served without recomputation.
func (s *GroupService) GetBalance(ctx context.Context, req *connect.Request[pb.GetBalanceRequest]) (*connect.Response[pb.GetBalanceResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("GetBalance request received", "group_id", groupID)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetBalance failed - group not found", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	result, err := s.settlements.GetSettlement(ctx, groupID)
	if errors.Is(err, settlement.ErrCacheStore) && result != nil {
		// The settlement is correct, it just will be recomputed next time
		slog.Warn("GetBalance served an uncached settlement", "group_id", groupID, "error", err)
	} else if err != nil {
		slog.Error("GetBalance failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetBalance successful",
		"group_id", groupID,
		"debts_count", len(result.Transactions),
		"cached", result.Cached,
	)

	return connect.NewResponse(&pb.GetBalanceResponse{
		GroupId:    groupID,
		Currency:   group.Currency,
		Debts:      toProtoDebts(result.Transactions),
		ComputedAt: unixMilli(result.ComputedAt),
		Cached:     result.Cached,
	}), nil
}

// GetBalances returns the net balance of every participant.
func (s *GroupService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	groupID := req.Msg.GroupId
	slog.Info("GetBalances request received", "group_id", groupID)

	if err := requireID("group_id", groupID); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetBalances failed - group not found", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	roster, expenses, err := s.store.LoadRosterAndExpenses(ctx, groupID)
	if err != nil {
		slog.Error("GetBalances failed - could not load expenses", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	balances, err := calculator.ComputeBalances(roster, expenses)
	if err != nil {
		slog.Error("GetBalances failed - calculation error", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	pbBalances := make([]*pb.ParticipantBalance, len(balances))
	for i, b := range balances {
		pbBalances[i] = &pb.ParticipantBalance{
			Participant: string(b.Participant),
			Amount:      b.Amount,
		}
	}

	slog.Info("GetBalances successful",
		"group_id", groupID,
		"expenses_count", len(expenses),
		"participants_count", len(balances),
	)

	return connect.NewResponse(&pb.GetBalancesResponse{
		GroupId:  groupID,
		Currency: group.Currency,
		Balances: pbBalances,
	}), nil
}
