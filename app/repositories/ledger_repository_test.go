package repositories

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_RecordOwnershipDeduplicates(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.RecordOwnership(ctx, "1"))
	require.NoError(t, repo.RecordOwnership(ctx, "bundle-b1"))
	require.NoError(t, repo.RecordOwnership(ctx, "1"))

	ids, err := repo.GetPurchasedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "bundle-b1"}, ids)
}

func TestLedgerRepository_EmptyLedger(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	ctx := context.Background()

	ids, err := repo.GetPurchasedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	customer, err := repo.GetLastCustomer(ctx)
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestLedgerRepository_RecordOrderPrependsNewestFirst(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	ctx := context.Background()

	first := models.OrderRecord{OrderID: "NX-1", Title: "First", Price: decimal.NewFromInt(49)}
	second := models.OrderRecord{OrderID: "NX-2", Title: "Second", Price: decimal.NewFromInt(59)}

	require.NoError(t, repo.RecordOrder(ctx, first))
	require.NoError(t, repo.RecordOrder(ctx, second))

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "NX-2", history[0].OrderID)
	assert.Equal(t, "NX-1", history[1].OrderID)
}

func TestLedgerRepository_LastCustomerOverwrites(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SaveLastCustomer(ctx, models.Customer{Name: "Alex", Email: "alex@aashok.com"}))
	require.NoError(t, repo.SaveLastCustomer(ctx, models.Customer{Name: "Sam", Email: "sam@aashok.com"}))

	customer, err := repo.GetLastCustomer(ctx)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Sam", customer.Name)
}
