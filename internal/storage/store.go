// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settleup/internal/models"
)

// ErrNotFound is wrapped by every store error caused by a missing group or expense.
var ErrNotFound = errors.New("not found")

// Store defines the interface for group, expense and cached settlement storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. The ID and CreatedAt fields are populated
	// by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its roster and cached settlement.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroupTitle renames a group.
	UpdateGroupTitle(ctx context.Context, groupID, title string) error

	// DeleteGroup removes a group and all of its expenses.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddParticipant appends a participant to the roster. Adding an existing
	// participant is a no-op.
	AddParticipant(ctx context.Context, groupID string, participant models.ParticipantID) error

	// RemoveParticipant drops a participant from the roster. Their expenses are kept.
	RemoveParticipant(ctx context.Context, groupID string, participant models.ParticipantID) error

	// CreateExpense persists a new expense. The ID field is populated by the store
	// when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces the description, amount, payer and involved
	// participants of an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByGroup retrieves the expenses of a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// LoadRosterAndExpenses returns everything the settlement engine needs for a group.
	LoadRosterAndExpenses(ctx context.Context, groupID string) ([]models.ParticipantID, []models.Expense, error)

	// LoadCacheEntry returns the cached settlement of a group, or nil if none was
	// ever stored.
	LoadCacheEntry(ctx context.Context, groupID string) (*models.CachedSettlement, error)

	// StoreCacheEntry replaces the cached settlement of a group.
	StoreCacheEntry(ctx context.Context, groupID string, entry *models.CachedSettlement) error

	// InvalidateCacheEntry marks the cached settlement of a group as stale.
	InvalidateCacheEntry(ctx context.Context, groupID string) error

	// Close releases any resources held by the store.
	Close() error
}
