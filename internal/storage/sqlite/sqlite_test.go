package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "settleup-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates ID and defaults", func(t *testing.T) {
		group := &models.Group{
			Title:        "Trip",
			Participants: models.ParticipantIDs([]string{"Alice", "Bob", "Alice"}),
		}

		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if group.Currency != models.DefaultCurrency {
			t.Errorf("Currency = %s, want %s", group.Currency, models.DefaultCurrency)
		}
		if len(group.Participants) != 2 {
			t.Errorf("Expected duplicate participant to collapse, got %v", group.Participants)
		}
	})

	t.Run("GetGroup keeps roster order", func(t *testing.T) {
		group := &models.Group{
			Title:        "Flat",
			Currency:     "EUR",
			Participants: models.ParticipantIDs([]string{"Zoe", "Adam", "Mia"}),
		}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if err := store.AddParticipant(ctx, group.ID, "Bea"); err != nil {
			t.Fatalf("AddParticipant failed: %v", err)
		}
		if err := store.AddParticipant(ctx, group.ID, "Zoe"); err != nil {
			t.Fatalf("AddParticipant of existing member failed: %v", err)
		}

		retrieved, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}

		want := []string{"Zoe", "Adam", "Mia", "Bea"}
		got := models.Names(retrieved.Participants)
		if len(got) != len(want) {
			t.Fatalf("Participants = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Participants[%d] = %s, want %s", i, got[i], want[i])
			}
		}
		if retrieved.Currency != "EUR" {
			t.Errorf("Currency = %s, want EUR", retrieved.Currency)
		}
		if retrieved.Settlement != nil {
			t.Errorf("Expected no cached settlement, got %+v", retrieved.Settlement)
		}
	})

	t.Run("RemoveParticipant and UpdateGroupTitle", func(t *testing.T) {
		group := &models.Group{Title: "Old", Participants: models.ParticipantIDs([]string{"A", "B"})}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if err := store.RemoveParticipant(ctx, group.ID, "A"); err != nil {
			t.Fatalf("RemoveParticipant failed: %v", err)
		}
		if err := store.UpdateGroupTitle(ctx, group.ID, "New"); err != nil {
			t.Fatalf("UpdateGroupTitle failed: %v", err)
		}

		retrieved, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if retrieved.Title != "New" {
			t.Errorf("Title = %s, want New", retrieved.Title)
		}
		if len(retrieved.Participants) != 1 || retrieved.Participants[0] != "B" {
			t.Errorf("Participants = %v, want [B]", retrieved.Participants)
		}
	})

	t.Run("missing groups return ErrNotFound", func(t *testing.T) {
		if _, err := store.GetGroup(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetGroup error = %v, want ErrNotFound", err)
		}
		if err := store.UpdateGroupTitle(ctx, "nonexistent-id", "x"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateGroupTitle error = %v, want ErrNotFound", err)
		}
		if err := store.AddParticipant(ctx, "nonexistent-id", "x"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("AddParticipant error = %v, want ErrNotFound", err)
		}
		if err := store.DeleteGroup(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteGroup error = %v, want ErrNotFound", err)
		}
		if _, err := store.LoadCacheEntry(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("LoadCacheEntry error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListGroups returns every group", func(t *testing.T) {
		groups, err := store.ListGroups(ctx)
		if err != nil {
			t.Fatalf("ListGroups failed: %v", err)
		}
		if len(groups) != 3 {
			t.Errorf("Expected 3 groups, got %d", len(groups))
		}
	})
}

func TestSQLiteStore_Expenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Title: "Dinner", Participants: models.ParticipantIDs([]string{"Alice", "Bob", "Charlie"})}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	older := &models.Expense{
		GroupID:     group.ID,
		Description: "Pizza",
		Amount:      30,
		Payer:       "Alice",
		Involved:    models.ParticipantIDs([]string{"Alice", "Bob", "Charlie"}),
		Date:        time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
	}
	newer := &models.Expense{
		GroupID:     group.ID,
		Description: "Taxi",
		Amount:      12.5,
		Payer:       "Bob",
		Involved:    models.ParticipantIDs([]string{"Charlie", "Bob"}),
		Date:        time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
	}

	t.Run("CreateExpense and GetExpense", func(t *testing.T) {
		for _, e := range []*models.Expense{older, newer} {
			if err := store.CreateExpense(ctx, e); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
			if e.ID == "" {
				t.Error("Expected expense ID to be generated")
			}
		}

		retrieved, err := store.GetExpense(ctx, newer.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.Description != "Taxi" || retrieved.Amount != 12.5 || retrieved.Payer != "Bob" {
			t.Errorf("Unexpected expense: %+v", retrieved)
		}
		if !retrieved.Date.Equal(newer.Date) {
			t.Errorf("Date = %v, want %v", retrieved.Date, newer.Date)
		}
		if len(retrieved.Involved) != 2 || retrieved.Involved[0] != "Charlie" {
			t.Errorf("Involved = %v, want [Charlie Bob]", retrieved.Involved)
		}
	})

	t.Run("ListExpensesByGroup is newest first", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("Expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].ID != newer.ID {
			t.Errorf("Expected newest expense first, got %s", expenses[0].Description)
		}
	})

	t.Run("UpdateExpense replaces involved participants", func(t *testing.T) {
		update := *older
		update.Amount = 45
		update.Involved = models.ParticipantIDs([]string{"Bob"})
		if err := store.UpdateExpense(ctx, &update); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}

		retrieved, err := store.GetExpense(ctx, older.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.Amount != 45 {
			t.Errorf("Amount = %v, want 45", retrieved.Amount)
		}
		if len(retrieved.Involved) != 1 || retrieved.Involved[0] != "Bob" {
			t.Errorf("Involved = %v, want [Bob]", retrieved.Involved)
		}
	})

	t.Run("LoadRosterAndExpenses returns roster and expenses", func(t *testing.T) {
		roster, expenses, err := store.LoadRosterAndExpenses(ctx, group.ID)
		if err != nil {
			t.Fatalf("LoadRosterAndExpenses failed: %v", err)
		}
		if len(roster) != 3 || roster[0] != "Alice" {
			t.Errorf("roster = %v", roster)
		}
		if len(expenses) != 2 {
			t.Errorf("Expected 2 expenses, got %d", len(expenses))
		}
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, newer.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, newer.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetExpense error = %v, want ErrNotFound", err)
		}
		if err := store.DeleteExpense(ctx, newer.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second DeleteExpense error = %v, want ErrNotFound", err)
		}
	})

	t.Run("DeleteGroup cascades to expenses", func(t *testing.T) {
		if err := store.DeleteGroup(ctx, group.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, older.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetExpense error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStore_CacheEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Title: "Cache", Participants: models.ParticipantIDs([]string{"A", "B"})}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	entry, err := store.LoadCacheEntry(ctx, group.ID)
	if err != nil {
		t.Fatalf("LoadCacheEntry failed: %v", err)
	}
	if entry != nil {
		t.Fatalf("Expected no cache entry for a new group, got %+v", entry)
	}

	computedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err = store.StoreCacheEntry(ctx, group.ID, &models.CachedSettlement{
		Transactions: []models.Transaction{{From: "B", To: "A", Amount: 12.34}},
		ComputedAt:   computedAt,
		Valid:        true,
	})
	if err != nil {
		t.Fatalf("StoreCacheEntry failed: %v", err)
	}

	entry, err = store.LoadCacheEntry(ctx, group.ID)
	if err != nil {
		t.Fatalf("LoadCacheEntry failed: %v", err)
	}
	if !entry.IsValid() {
		t.Fatalf("Expected valid cache entry, got %+v", entry)
	}
	if !entry.ComputedAt.Equal(computedAt) {
		t.Errorf("ComputedAt = %v, want %v", entry.ComputedAt, computedAt)
	}
	if len(entry.Transactions) != 1 || entry.Transactions[0].Amount != 12.34 {
		t.Errorf("Transactions = %+v", entry.Transactions)
	}

	if err := store.InvalidateCacheEntry(ctx, group.ID); err != nil {
		t.Fatalf("InvalidateCacheEntry failed: %v", err)
	}

	entry, err = store.LoadCacheEntry(ctx, group.ID)
	if err != nil {
		t.Fatalf("LoadCacheEntry failed: %v", err)
	}
	if entry.IsValid() {
		t.Errorf("Expected invalid cache entry after invalidation, got %+v", entry)
	}
	if !entry.ComputedAt.IsZero() {
		t.Errorf("Expected ComputedAt to be cleared, got %v", entry.ComputedAt)
	}

	// Empty settlements are still cacheable
	err = store.StoreCacheEntry(ctx, group.ID, &models.CachedSettlement{ComputedAt: computedAt, Valid: true})
	if err != nil {
		t.Fatalf("StoreCacheEntry failed: %v", err)
	}
	retrieved, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if !retrieved.Settlement.IsValid() || len(retrieved.Settlement.Transactions) != 0 {
		t.Errorf("Settlement = %+v, want valid and empty", retrieved.Settlement)
	}
}
