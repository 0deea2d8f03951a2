package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrail/paisa-trail/internal/common"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/service"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTransaction(fingerprint, description string, amount float64) model.ParsedTransaction {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return model.ParsedTransaction{
		Fingerprint: fingerprint,
		Date:        date,
		Amount:      amount,
		Direction:   model.DirectionDebit,
		Category:    model.CategoryFoodDining,
		Description: description,
		Sender:      "HDFCBNK",
	}
}

func TestSaveTransactions_AssignsIDsAndPersists(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txns := []model.ParsedTransaction{
		testTransaction("abc123", "Zomato", 1250),
		testTransaction("def456", "Swiggy", 300),
	}

	inserted, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveTransactions_DuplicateFingerprintIgnored(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("abc123", "Zomato", 1250)

	inserted, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// Re-delivered notification: same fingerprint, fresh parse.
	redelivered := testTransaction("abc123", "Zomato", 1250)
	inserted, err = store.SaveTransactions(ctx, []model.ParsedTransaction{redelivered})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSaveTransactions_MixedBatchCountsOnlyNew(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction("abc123", "Zomato", 1250),
	})
	require.NoError(t, err)

	inserted, err := store.SaveTransactions(ctx, []model.ParsedTransaction{
		testTransaction("abc123", "Zomato", 1250),
		testTransaction("def456", "Swiggy", 300),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSaveTransactions_RejectsInvalid(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.ParsedTransaction)
		name   string
	}{
		{name: "missing fingerprint", mutate: func(txn *model.ParsedTransaction) { txn.Fingerprint = "" }},
		{name: "zero amount", mutate: func(txn *model.ParsedTransaction) { txn.Amount = 0 }},
		{name: "negative amount", mutate: func(txn *model.ParsedTransaction) { txn.Amount = -5 }},
		{name: "unknown direction", mutate: func(txn *model.ParsedTransaction) { txn.Direction = "SIDEWAYS" }},
		{name: "missing category", mutate: func(txn *model.ParsedTransaction) { txn.Category = "" }},
		{name: "zero date", mutate: func(txn *model.ParsedTransaction) { txn.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := testTransaction("xyz", "Shop", 100)
			tt.mutate(&txn)

			_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
			assert.Error(t, err)
		})
	}

	_, err := store.SaveTransactions(ctx, nil)
	assert.Error(t, err)
	_, err = store.SaveTransactions(ctx, []model.ParsedTransaction{})
	assert.Error(t, err)
}

func TestListTransactions_NewestFirstWithLimitAndFilter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	older := testTransaction("aaa", "Zomato", 100)
	older.Date = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	newer := testTransaction("bbb", "Uber", 200)
	newer.Date = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	newer.Category = model.CategoryTransportation

	newest := testTransaction("ccc", "Swiggy", 300)
	newest.Date = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{older, newer, newest})
	require.NoError(t, err)

	all, err := store.ListTransactions(ctx, service.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ccc", all[0].Fingerprint)
	assert.Equal(t, "bbb", all[1].Fingerprint)
	assert.Equal(t, "aaa", all[2].Fingerprint)

	limited, err := store.ListTransactions(ctx, service.ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	food, err := store.ListTransactions(ctx, service.ListOptions{Category: model.CategoryFoodDining})
	require.NoError(t, err)
	require.Len(t, food, 2)
	for _, txn := range food {
		assert.Equal(t, model.CategoryFoodDining, txn.Category)
	}
}

func TestGetTransactionByFingerprint(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	saved := testTransaction("abc123", "Zomato", 1250.50)
	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{saved})
	require.NoError(t, err)

	got, err := store.GetTransactionByFingerprint(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Zomato", got.Description)
	assert.InDelta(t, 1250.50, got.Amount, 0.001)
	assert.Equal(t, model.DirectionDebit, got.Direction)
	assert.Equal(t, model.CategoryFoodDining, got.Category)
	assert.Equal(t, "HDFCBNK", got.Sender)
	assert.True(t, saved.Date.Equal(got.Date))

	_, err = store.GetTransactionByFingerprint(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)

	require.NoError(t, store.Migrate(context.Background()))
}
