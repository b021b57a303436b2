package service

import (
	"testing"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductServiceTest(t *testing.T) ProductService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewProductService(repository.NewProductRepository(testDB))
}

func tincture(name, sku, category string) *model.Product {
	return &model.Product{
		Name:          name,
		SKU:           sku,
		Category:      category,
		YourPrice:     "$10.00",
		MarketPrice:   "$18.00",
		StockQuantity: 25,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	svc := setupProductServiceTest(t)

	product := tincture("Pure CBD Oil", "OIL-100", "Tinctures")
	require.NoError(t, svc.CreateProduct(product))
	assert.NotZero(t, product.ID)

	found, err := svc.GetProductBySKU("OIL-100")
	require.NoError(t, err)
	assert.Equal(t, "Pure CBD Oil", found.Name)
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	svc := setupProductServiceTest(t)

	require.NoError(t, svc.CreateProduct(tincture("Pure CBD Oil", "OIL-101", "Tinctures")))

	err := svc.CreateProduct(tincture("Another Oil", "OIL-101", "Tinctures"))
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestProductService_CreateProduct_InvalidPrice(t *testing.T) {
	svc := setupProductServiceTest(t)

	product := tincture("Freebie", "OIL-102", "Tinctures")
	product.YourPrice = "$0.00"
	assert.ErrorIs(t, svc.CreateProduct(product), ErrInvalidPrice)

	product.YourPrice = "not a price"
	assert.ErrorIs(t, svc.CreateProduct(product), ErrInvalidPrice)
}

func TestProductService_ListProducts(t *testing.T) {
	svc := setupProductServiceTest(t)

	require.NoError(t, svc.CreateProduct(tincture("Pure CBD Oil", "OIL-103", "Tinctures")))
	require.NoError(t, svc.CreateProduct(tincture("Relief Balm", "BLM-100", "Topicals")))
	require.NoError(t, svc.CreateProduct(tincture("Sleep Gummies", "GUM-200", "Edibles")))

	all, err := svc.ListProducts(ProductListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	topicals, err := svc.ListProducts(ProductListOptions{Category: "Topicals"})
	require.NoError(t, err)
	require.Len(t, topicals, 1)
	assert.Equal(t, "Relief Balm", topicals[0].Name)

	// search matches name or SKU, case-insensitively
	byName, err := svc.ListProducts(ProductListOptions{Search: "gummies"})
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	bySKU, err := svc.ListProducts(ProductListOptions{Search: "blm-"})
	require.NoError(t, err)
	assert.Len(t, bySKU, 1)

	none, err := svc.ListProducts(ProductListOptions{Search: "vape"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc := setupProductServiceTest(t)

	_, err := svc.GetProductByID(404)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.GetProductBySKU("NOPE-0")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_AdjustStock(t *testing.T) {
	svc := setupProductServiceTest(t)

	product := tincture("Pure CBD Oil", "OIL-104", "Tinctures")
	require.NoError(t, svc.CreateProduct(product))

	updated, err := svc.AdjustStock(product.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.StockQuantity)

	updated, err = svc.AdjustStock(product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.StockQuantity)

	// stock never goes negative
	updated, err = svc.AdjustStock(product.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)

	_, err = svc.AdjustStock(404, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
