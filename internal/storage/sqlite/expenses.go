package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// CreateExpense persists a new expense with its involved participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, group_id, description, amount, payer, date) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.GroupID, expense.Description, expense.Amount, string(expense.Payer), expense.Date.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertInvolved(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its involved participants.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var payer string
	var date int64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, description, amount, payer, date FROM expenses WHERE id = ?",
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount, &payer, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Payer = models.ParticipantID(payer)
	expense.Date = time.UnixMilli(date).UTC()

	expense.Involved, err = s.listInvolved(ctx, expense.ID)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense replaces the mutable fields of an existing expense.
// The group of an expense never changes.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE expenses SET description = ?, amount = ?, payer = ? WHERE id = ?",
		expense.Description, expense.Amount, string(expense.Payer), expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if err := requireRow(res, "expense", expense.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_involved WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear involved participants: %w", err)
	}
	if err := insertInvolved(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(res, "expense", expenseID)
}

// ListExpensesByGroup retrieves the expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if err := s.groupExists(ctx, groupID); err != nil {
		return nil, err
	}

	expenses, err := s.queryExpenses(ctx,
		"SELECT id, group_id, description, amount, payer, date FROM expenses WHERE group_id = ? ORDER BY date DESC, id",
		groupID,
	)
	if err != nil {
		return nil, err
	}

	list := make([]*models.Expense, len(expenses))
	for i := range expenses {
		list[i] = &expenses[i]
	}
	return list, nil
}

func (s *SQLiteStore) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		var payer string
		var date int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount, &payer, &date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Payer = models.ParticipantID(payer)
		expense.Date = time.UnixMilli(date).UTC()
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	for i := range expenses {
		expenses[i].Involved, err = s.listInvolved(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

func (s *SQLiteStore) listInvolved(ctx context.Context, expenseID string) ([]models.ParticipantID, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant FROM expense_involved WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get involved participants: %w", err)
	}
	defer rows.Close()

	var involved []models.ParticipantID
	for rows.Next() {
		var participant string
		if err := rows.Scan(&participant); err != nil {
			return nil, fmt.Errorf("failed to scan involved participant: %w", err)
		}
		involved = append(involved, models.ParticipantID(participant))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate involved participants: %w", err)
	}

	return involved, nil
}

func insertInvolved(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i, participant := range expense.Involved {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_involved (expense_id, participant, position) VALUES (?, ?, ?)",
			expense.ID, string(participant), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert involved participant: %w", err)
		}
	}
	return nil
}
