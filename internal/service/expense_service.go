package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/settlement"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

// ExpenseService implements the Connect ExpenseService.
// Every write runs inside settlements.Mutate, which invalidates the group's
// cached settlement before the ledger changes.
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	store       storage.Store
	settlements *settlement.Coordinator
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, settlements *settlement.Coordinator) *ExpenseService {
	return &ExpenseService{store: store, settlements: settlements}
}

// CreateExpense records an expense in a group.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	msg := req.Msg
	slog.Info("CreateExpense request received",
		"group_id", msg.GroupId,
		"amount", msg.Amount,
		"payer", msg.Payer,
		"involved_count", len(msg.Involved),
	)

	if err := requireID("group_id", msg.GroupId); err != nil {
		return nil, err
	}
	expense, err := newExpense(msg)
	if err != nil {
		return nil, err
	}

	err = s.settlements.Mutate(ctx, msg.GroupId, func(ctx context.Context) error {
		group, err := s.store.GetGroup(ctx, msg.GroupId)
		if err != nil {
			return err
		}
		if err := checkRoster(group, expense.Payer, expense.Involved); err != nil {
			return err
		}
		return s.store.CreateExpense(ctx, expense)
	})
	if err != nil {
		slog.Error("CreateExpense failed", "group_id", msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "group_id", expense.GroupID)

	return connect.NewResponse(&pb.CreateExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseId)

	if err := requireID("expense_id", req.Msg.ExpenseId); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// UpdateExpense changes the fields set in the request and keeps the rest.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.UpdateExpenseResponse], error) {
	msg := req.Msg
	slog.Info("UpdateExpense request received", "expense_id", msg.ExpenseId)

	if err := requireID("expense_id", msg.ExpenseId); err != nil {
		return nil, err
	}

	// The group of an expense never changes, so it can be read before locking
	current, err := s.store.GetExpense(ctx, msg.ExpenseId)
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	var updated *models.Expense
	err = s.settlements.Mutate(ctx, current.GroupID, func(ctx context.Context) error {
		expense, err := s.store.GetExpense(ctx, msg.ExpenseId)
		if err != nil {
			return err
		}
		if err := applyUpdate(expense, msg); err != nil {
			return err
		}

		// Unchanged fields may still name participants removed from the roster
		if msg.Payer != nil || len(msg.Involved) > 0 {
			group, err := s.store.GetGroup(ctx, expense.GroupID)
			if err != nil {
				return err
			}
			if msg.Payer != nil {
				if err := checkPayer(group, expense.Payer); err != nil {
					return err
				}
			}
			if len(msg.Involved) > 0 {
				if err := checkInvolved(group, expense.Involved); err != nil {
					return err
				}
			}
		}

		if err := s.store.UpdateExpense(ctx, expense); err != nil {
			return err
		}
		updated = expense
		return nil
	})
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense updated", "expense_id", updated.ID, "group_id", updated.GroupID)

	return connect.NewResponse(&pb.UpdateExpenseResponse{Expense: toProtoExpense(updated)}), nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	expenseID := req.Msg.ExpenseId
	slog.Info("DeleteExpense request received", "expense_id", expenseID)

	if err := requireID("expense_id", expenseID); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return nil, toConnectError(err)
	}

	err = s.settlements.Mutate(ctx, expense.GroupID, func(ctx context.Context) error {
		return s.store.DeleteExpense(ctx, expenseID)
	})
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", expenseID, "group_id", expense.GroupID)

	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

// newExpense validates a create request and builds the expense it describes.
func newExpense(msg *pb.CreateExpenseRequest) (*models.Expense, error) {
	description := strings.TrimSpace(msg.Description)
	if description == "" {
		return nil, invalidArgument("description required")
	}
	if err := validateAmount(msg.Amount); err != nil {
		return nil, err
	}
	payer := strings.TrimSpace(msg.Payer)
	if payer == "" {
		return nil, invalidArgument("payer required")
	}
	involved, err := participantNames("involved", msg.Involved)
	if err != nil {
		return nil, err
	}
	if len(involved) == 0 {
		return nil, invalidArgument("involved must name at least one participant")
	}

	expense := &models.Expense{
		GroupID:     msg.GroupId,
		Description: description,
		Amount:      msg.Amount,
		Payer:       models.ParticipantID(payer),
		Involved:    involved,
	}
	if msg.Date != 0 {
		expense.Date = time.UnixMilli(msg.Date).UTC()
	}
	return expense, nil
}

// applyUpdate copies the fields set in msg onto expense. An empty involved
// list keeps the current one.
func applyUpdate(expense *models.Expense, msg *pb.UpdateExpenseRequest) error {
	if msg.Description != nil {
		description := strings.TrimSpace(*msg.Description)
		if description == "" {
			return invalidArgument("description must not be empty")
		}
		expense.Description = description
	}
	if msg.Amount != nil {
		if err := validateAmount(*msg.Amount); err != nil {
			return err
		}
		expense.Amount = *msg.Amount
	}
	if msg.Payer != nil {
		payer := strings.TrimSpace(*msg.Payer)
		if payer == "" {
			return invalidArgument("payer must not be empty")
		}
		expense.Payer = models.ParticipantID(payer)
	}
	if len(msg.Involved) > 0 {
		involved, err := participantNames("involved", msg.Involved)
		if err != nil {
			return err
		}
		expense.Involved = involved
	}
	return nil
}
