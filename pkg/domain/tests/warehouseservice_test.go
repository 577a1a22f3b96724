package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeste7/flw/pkg/domain/model"
	"github.com/aeste7/flw/pkg/domain/service"
	"github.com/aeste7/flw/pkg/infrastructure/inmemory"
)

func setupWarehouse(t *testing.T) (service.WarehouseService, *inmemory.Store) {
	t.Helper()
	store := inmemory.NewStore()
	return service.NewWarehouseService(store.Flowers()), store
}

func TestAddFlowersAccumulatesOnOneRow(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 10)
	require.NoError(t, err)
	_, err = warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)
	_, err = warehouse.AddFlowers(ctx, "tulip", 3)
	require.NoError(t, err)

	flowers, err := warehouse.ListFlowers(ctx)
	require.NoError(t, err)
	require.Len(t, flowers, 2)
	assert.Equal(t, "rose", flowers[0].Name)
	assert.Equal(t, 15, flowers[0].Amount)
	assert.Equal(t, "tulip", flowers[1].Name)
	assert.Equal(t, 3, flowers[1].Amount)
}

func TestAddFlowersValidation(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	t.Run("zero amount", func(t *testing.T) {
		_, err := warehouse.AddFlowers(ctx, "rose", 0)
		assert.ErrorIs(t, err, service.ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := warehouse.AddFlowers(ctx, "rose", -2)
		assert.ErrorIs(t, err, service.ErrInvalidAmount)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := warehouse.AddFlowers(ctx, "   ", 1)
		assert.ErrorIs(t, err, service.ErrEmptyFlower)
	})
}

func TestFlowerNamesAreCaseSensitive(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "Rose", 4)
	require.NoError(t, err)
	_, err = warehouse.AddFlowers(ctx, "rose", 6)
	require.NoError(t, err)

	flowers, err := warehouse.ListFlowers(ctx)
	require.NoError(t, err)
	assert.Len(t, flowers, 2)
}

func TestDebitClampsAtZero(t *testing.T) {
	warehouse, store := setupWarehouse(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	require.NoError(t, warehouse.Debit(ctx, "rose", 8))

	rose, err := store.Flowers().FindByName(ctx, "rose")
	require.NoError(t, err)
	require.NotNil(t, rose)
	assert.Equal(t, 0, rose.Amount)
}

func TestDebitUnknownFlowerIsNoOp(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	require.NoError(t, warehouse.Debit(ctx, "orchid", 3))

	flowers, err := warehouse.ListFlowers(ctx)
	require.NoError(t, err)
	assert.Empty(t, flowers)
}

func TestCreditUnknownFlowerCreatesRow(t *testing.T) {
	warehouse, store := setupWarehouse(t)
	ctx := context.Background()

	require.NoError(t, warehouse.Credit(ctx, "peony", 7))

	peony, err := store.Flowers().FindByName(ctx, "peony")
	require.NoError(t, err)
	require.NotNil(t, peony)
	assert.Equal(t, 7, peony.Amount)
}

func TestUpdateFlower(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	created, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	t.Run("explicit zero is allowed", func(t *testing.T) {
		zero := 0
		updated, err := warehouse.UpdateFlower(ctx, created.ID, model.FlowerUpdate{Amount: &zero})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Amount)
	})

	t.Run("rename", func(t *testing.T) {
		name := "red rose"
		updated, err := warehouse.UpdateFlower(ctx, created.ID, model.FlowerUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "red rose", updated.Name)
	})

	t.Run("rename trims padding", func(t *testing.T) {
		padded := "  rose  "
		updated, err := warehouse.UpdateFlower(ctx, created.ID, model.FlowerUpdate{Name: &padded})
		require.NoError(t, err)
		assert.Equal(t, "rose", updated.Name)

		// The trimmed name is the ledger key: adding stock finds the same row.
		found, err := warehouse.AddFlowers(ctx, "rose", 1)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		negative := -1
		_, err := warehouse.UpdateFlower(ctx, created.ID, model.FlowerUpdate{Amount: &negative})
		assert.ErrorIs(t, err, service.ErrInvalidAmount)
	})

	t.Run("missing id", func(t *testing.T) {
		one := 1
		_, err := warehouse.UpdateFlower(ctx, 9999, model.FlowerUpdate{Amount: &one})
		assert.ErrorIs(t, err, model.ErrFlowerNotFound)
	})
}

func TestRemoveFlower(t *testing.T) {
	warehouse, _ := setupWarehouse(t)
	ctx := context.Background()

	created, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	require.NoError(t, warehouse.RemoveFlower(ctx, created.ID))

	_, err = warehouse.GetFlower(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrFlowerNotFound)

	assert.ErrorIs(t, warehouse.RemoveFlower(ctx, created.ID), model.ErrFlowerNotFound)
}
