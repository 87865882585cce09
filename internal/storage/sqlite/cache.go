package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// LoadRosterAndExpenses returns the roster and every expense of a group.
func (s *SQLiteStore) LoadRosterAndExpenses(ctx context.Context, groupID string) ([]models.ParticipantID, []models.Expense, error) {
	if err := s.groupExists(ctx, groupID); err != nil {
		return nil, nil, err
	}

	roster, err := s.listParticipants(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	expenses, err := s.queryExpenses(ctx,
		"SELECT id, group_id, description, amount, payer, date FROM expenses WHERE group_id = ? ORDER BY date, id",
		groupID,
	)
	if err != nil {
		return nil, nil, err
	}

	return roster, expenses, nil
}

// LoadCacheEntry returns the cached settlement stored on the group row.
func (s *SQLiteStore) LoadCacheEntry(ctx context.Context, groupID string) (*models.CachedSettlement, error) {
	var cachedDebts sql.NullString
	var lastUpdated sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT cached_debts, debts_last_updated FROM groups WHERE id = ?",
		groupID,
	).Scan(&cachedDebts, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached settlement: %w", err)
	}

	return decodeCacheEntry(cachedDebts, lastUpdated)
}

// StoreCacheEntry writes the cached settlement onto the group row.
func (s *SQLiteStore) StoreCacheEntry(ctx context.Context, groupID string, entry *models.CachedSettlement) error {
	transactions := entry.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	debts, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode cached settlement: %w", err)
	}

	var lastUpdated sql.NullInt64
	if entry.IsValid() {
		lastUpdated = sql.NullInt64{Int64: entry.ComputedAt.UnixNano(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET cached_debts = ?, debts_last_updated = ? WHERE id = ?",
		string(debts), lastUpdated, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to store cached settlement: %w", err)
	}
	return requireRow(res, "group", groupID)
}

// InvalidateCacheEntry clears the last-updated mark, leaving the stale debts in place.
func (s *SQLiteStore) InvalidateCacheEntry(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET debts_last_updated = NULL WHERE id = ?",
		groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate cached settlement: %w", err)
	}
	return requireRow(res, "group", groupID)
}

func decodeCacheEntry(cachedDebts sql.NullString, lastUpdated sql.NullInt64) (*models.CachedSettlement, error) {
	if !cachedDebts.Valid {
		return nil, nil
	}

	entry := &models.CachedSettlement{}
	if err := json.Unmarshal([]byte(cachedDebts.String), &entry.Transactions); err != nil {
		return nil, fmt.Errorf("failed to decode cached settlement: %w", err)
	}
	if lastUpdated.Valid {
		entry.ComputedAt = time.Unix(0, lastUpdated.Int64).UTC()
		entry.Valid = true
	}

	return entry, nil
}
