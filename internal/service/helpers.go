package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	pb "github.com/mmynk/settleup/pkg/proto"
)

// toConnectError maps domain errors onto Connect codes.
// Errors that already carry a code are returned unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var inputErr *calculator.InputError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &inputErr):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, calculator.ErrUnbalanced):
		return connect.NewError(connect.CodeInternal, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidArgument("%s required", field)
	}
	return nil
}

// normalizeCurrency upper-cases a currency code, defaulting empty codes.
func normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return models.DefaultCurrency, nil
	}
	if len(currency) != 3 {
		return "", invalidArgument("currency must be a 3-letter code, got %q", currency)
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return "", invalidArgument("currency must be a 3-letter code, got %q", currency)
		}
	}
	return currency, nil
}

// participantNames trims names, rejects blanks and drops duplicates, keeping
// the first occurrence.
func participantNames(field string, names []string) ([]models.ParticipantID, error) {
	seen := make(map[string]bool, len(names))
	ids := make([]models.ParticipantID, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, invalidArgument("%s must not contain empty names", field)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		ids = append(ids, models.ParticipantID(name))
	}
	return ids, nil
}

// checkRoster verifies that payer and involved participants belong to the group.
func checkRoster(group *models.Group, payer models.ParticipantID, involved []models.ParticipantID) error {
	if err := checkPayer(group, payer); err != nil {
		return err
	}
	return checkInvolved(group, involved)
}

func checkPayer(group *models.Group, payer models.ParticipantID) error {
	if !group.HasParticipant(payer) {
		return invalidArgument("payer %q is not a participant of group %s", payer, group.ID)
	}
	return nil
}

func checkInvolved(group *models.Group, involved []models.ParticipantID) error {
	for _, p := range involved {
		if !group.HasParticipant(p) {
			return invalidArgument("involved participant %q is not a participant of group %s", p, group.ID)
		}
	}
	return nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return invalidArgument("amount must be a positive number, got %v", amount)
	}
	return nil
}

func toProtoGroup(group *models.Group) *pb.Group {
	return &pb.Group{
		Id:           group.ID,
		Title:        group.Title,
		Currency:     group.Currency,
		Participants: models.Names(group.Participants),
		CreatedAt:    group.CreatedAt,
	}
}

func toProtoExpense(expense *models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:          expense.ID,
		GroupId:     expense.GroupID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Payer:       string(expense.Payer),
		Involved:    models.Names(expense.Involved),
		Date:        expense.Date.UnixMilli(),
	}
}

func toProtoDebts(transactions []models.Transaction) []*pb.Debt {
	debts := make([]*pb.Debt, len(transactions))
	for i, t := range transactions {
		debts[i] = &pb.Debt{
			From:   string(t.From),
			To:     string(t.To),
			Amount: t.Amount,
		}
	}
	return debts
}

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
