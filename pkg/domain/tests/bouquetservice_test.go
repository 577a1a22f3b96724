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

func setupBouquets(t *testing.T) (service.BouquetService, service.WarehouseService, *inmemory.Store) {
	t.Helper()
	store := inmemory.NewStore()
	warehouse := service.NewWarehouseService(store.Flowers())
	bouquets := service.NewBouquetService(store.Bouquets(), warehouse, store)
	return bouquets, warehouse, store
}

func TestCreateBouquetDebitsWarehouse(t *testing.T) {
	bouquets, warehouse, _ := setupBouquets(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	created, err := bouquets.CreateBouquet(ctx, "spring mix", nil, []model.LineItem{{Flower: "rose", Amount: 2}})
	require.NoError(t, err)
	assert.Equal(t, "spring mix", created.Description)
	assert.Equal(t, 3, flowerAmount(t, warehouse, "rose"))

	items, err := bouquets.GetBouquetItems(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rose", items[0].Flower)
	assert.Equal(t, 2, items[0].Amount)
}

func TestCreateBouquetRequiresItems(t *testing.T) {
	bouquets, _, _ := setupBouquets(t)

	_, err := bouquets.CreateBouquet(context.Background(), "empty", nil, nil)
	assert.ErrorIs(t, err, service.ErrEmptyItems)
}

func TestDisassembleBouquetReturnsFlowers(t *testing.T) {
	bouquets, warehouse, _ := setupBouquets(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	created, err := bouquets.CreateBouquet(ctx, "spring mix", nil, []model.LineItem{{Flower: "rose", Amount: 2}})
	require.NoError(t, err)
	require.Equal(t, 3, flowerAmount(t, warehouse, "rose"))

	require.NoError(t, bouquets.DisassembleBouquet(ctx, created.ID))
	assert.Equal(t, 5, flowerAmount(t, warehouse, "rose"))

	_, err = bouquets.GetBouquet(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrBouquetNotFound)
}

func TestSellBouquetKeepsWarehouseUntouched(t *testing.T) {
	bouquets, warehouse, _ := setupBouquets(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	created, err := bouquets.CreateBouquet(ctx, "spring mix", nil, []model.LineItem{{Flower: "rose", Amount: 2}})
	require.NoError(t, err)

	require.NoError(t, bouquets.SellBouquet(ctx, created.ID))

	// Sold flowers are gone for good.
	assert.Equal(t, 3, flowerAmount(t, warehouse, "rose"))

	_, err = bouquets.GetBouquet(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrBouquetNotFound)

	items, err := bouquets.ListBouquets(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSellMissingBouquet(t *testing.T) {
	bouquets, _, _ := setupBouquets(t)

	err := bouquets.SellBouquet(context.Background(), 77)
	assert.ErrorIs(t, err, model.ErrBouquetNotFound)

	err = bouquets.DisassembleBouquet(context.Background(), 77)
	assert.ErrorIs(t, err, model.ErrBouquetNotFound)
}

func TestCreateBouquetWithPhoto(t *testing.T) {
	bouquets, warehouse, _ := setupBouquets(t)
	ctx := context.Background()

	_, err := warehouse.AddFlowers(ctx, "rose", 5)
	require.NoError(t, err)

	photo := "ZmFrZS1pbWFnZS1ieXRlcw=="
	created, err := bouquets.CreateBouquet(ctx, "with photo", &photo, []model.LineItem{{Flower: "rose", Amount: 1}})
	require.NoError(t, err)
	require.NotNil(t, created.Photo)
	assert.Equal(t, photo, *created.Photo)
}
