package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest(t *testing.T) (*cartService, repository.ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	svc := NewCartService(repository.NewMemoryCartStore(), productRepo).(*cartService)
	return svc, productRepo
}

func seedCartProduct(t *testing.T, productRepo repository.ProductRepository, sku, price string) *model.Product {
	product := &model.Product{
		Name:          "Pure CBD Tincture",
		SKU:           sku,
		Category:      "Tinctures",
		YourPrice:     price,
		MarketPrice:   "$18.00",
		StockQuantity: 100,
	}
	require.NoError(t, productRepo.Create(product))
	return product
}

func TestCartService_AddItem(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-234", "$10.00")

	cart, err := svc.AddItem(ctx, 1, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	line := cart.Lines[0]
	assert.Equal(t, "Large", line.Size)
	assert.Equal(t, "White", line.Color)
	assert.Equal(t, 3, line.Qty)
	assert.Equal(t, "$30", line.Price)
	assert.Equal(t, product.SKU, line.SKU)
	assert.Equal(t, 3, cart.TotalQty)
}

func TestCartService_AddItem_LineIDFormat(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-235", "$10.00")

	at := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return at }

	cart, err := svc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, fmt.Sprintf("cart-%d-1700000000000", product.ID), cart.Lines[0].ID)
}

func TestCartService_AddItem_SameProductMakesDistinctLines(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-236", "$10.00")

	ms := int64(1700000000000)
	svc.now = func() time.Time {
		ms++
		return time.UnixMilli(ms)
	}

	_, err := svc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.NotEqual(t, cart.Lines[0].ID, cart.Lines[1].ID)
	assert.Equal(t, 3, cart.TotalQty)
}

func TestCartService_AddItem_NonPositiveQtyIsNoop(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-237", "$10.00")

	cart, err := svc.AddItem(ctx, 1, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	cart, err = svc.AddItem(ctx, 1, product.ID, -5)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	_, err := svc.AddItem(context.Background(), 1, 9999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_UpdateQty(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-238", "$10.00")

	cart, err := svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	// price follows the new quantity
	cart, err = svc.UpdateQty(ctx, 1, lineID, 5)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Qty)
	assert.Equal(t, "$50", cart.Lines[0].Price)

	// negative clamps to zero, which removes the line
	cart, err = svc.UpdateQty(ctx, 1, lineID, -3)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalQty)
}

func TestCartService_UpdateQty_UnknownLineIsNoop(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-239", "$10.00")

	cart, err := svc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)

	updated, err := svc.UpdateQty(ctx, 1, "cart-0-0", 9)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, updated.Lines)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-240", "$10.00")

	cart, err := svc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	cart, err = svc.RemoveItem(ctx, 1, lineID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// removing again is a no-op
	cart, err = svc.RemoveItem(ctx, 1, lineID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartService_Clear(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-241", "$1,500")

	cart, err := svc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "$3000", cart.Lines[0].Price)

	require.NoError(t, svc.Clear(ctx, 1))

	cart, err = svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	ctx := context.Background()

	product := seedCartProduct(t, productRepo, "PAT-242", "$10.00")

	_, err := svc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
