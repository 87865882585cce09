// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so that every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateGroup persists a new group with its roster.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.Currency == "" {
		group.Currency = models.DefaultCurrency
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, title, currency, created_at) VALUES (?, ?, ?, ?)",
		group.ID, group.Title, group.Currency, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	// Duplicate names collapse onto their first position
	roster := make([]models.ParticipantID, 0, len(group.Participants))
	for _, p := range group.Participants {
		res, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO group_participants (group_id, name, position) VALUES (?, ?, ?)",
			group.ID, string(p), len(roster),
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			roster = append(roster, p)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	group.Participants = roster
	return nil
}

// GetGroup retrieves a group by ID, including its roster and cached settlement.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	var cachedDebts sql.NullString
	var lastUpdated sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, currency, created_at, cached_debts, debts_last_updated FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Title, &group.Currency, &group.CreatedAt, &cachedDebts, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	group.Participants, err = s.listParticipants(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.Settlement, err = decodeCacheEntry(cachedDebts, lastUpdated)
	if err != nil {
		return nil, err
	}

	return group, nil
}

// ListGroups retrieves all groups, newest first.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, currency, created_at FROM groups ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Title, &group.Currency, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, group := range groups {
		group.Participants, err = s.listParticipants(ctx, group.ID)
		if err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// UpdateGroupTitle renames a group.
func (s *SQLiteStore) UpdateGroupTitle(ctx context.Context, groupID, title string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE groups SET title = ? WHERE id = ?", title, groupID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireRow(res, "group", groupID)
}

// DeleteGroup removes a group; participants and expenses cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return requireRow(res, "group", groupID)
}

// AddParticipant appends a participant at the end of the roster.
func (s *SQLiteStore) AddParticipant(ctx context.Context, groupID string, participant models.ParticipantID) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO group_participants (group_id, name, position)
		 SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM group_participants WHERE group_id = ?`,
		groupID, string(participant), groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant drops a participant from the roster.
func (s *SQLiteStore) RemoveParticipant(ctx context.Context, groupID string, participant models.ParticipantID) error {
	if err := s.groupExists(ctx, groupID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM group_participants WHERE group_id = ? AND name = ?",
		groupID, string(participant),
	)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listParticipants(ctx context.Context, groupID string) ([]models.ParticipantID, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM group_participants WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.ParticipantID
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, models.ParticipantID(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

func (s *SQLiteStore) groupExists(ctx context.Context, groupID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", groupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check group existence: %w", err)
	}
	return nil
}

// requireRow turns an update that touched nothing into a not found error.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
