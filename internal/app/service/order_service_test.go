package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	db          *gorm.DB
	orderSvc    *orderService
	cartSvc     CartService
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
}

func setupOrderServiceTest(t *testing.T) *orderTestEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	invoiceRepo := repository.NewInvoiceRepository(testDB)
	cartStore := repository.NewMemoryCartStore()

	svc := NewOrderService(
		repository.NewOrderRepository(testDB),
		invoiceRepo,
		productRepo,
		cartStore,
		testDB,
		nil,
	).(*orderService)

	return &orderTestEnv{
		db:          testDB,
		orderSvc:    svc,
		cartSvc:     NewCartService(cartStore, productRepo),
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
	}
}

func (e *orderTestEnv) seedProduct(t *testing.T, sku, price string, stock int) *model.Product {
	product := &model.Product{
		Name:          "Broad Spectrum Gummies",
		SKU:           sku,
		Category:      "Edibles",
		YourPrice:     price,
		MarketPrice:   "$25.00",
		StockQuantity: stock,
	}
	require.NoError(t, e.productRepo.Create(product))
	return product
}

func TestOrderService_CreateFromCart(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-100", "$10.00", 10)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 3)
	require.NoError(t, err)

	order, err := env.orderSvc.CreateFromCart(ctx, 1, "2026-09-15")
	require.NoError(t, err)

	assert.Contains(t, order.OrderNumber, "ORD-")
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, order.PaymentStatus)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(30)), "total = %s", order.Total)
	require.NotNil(t, order.DeliveredOn)
	assert.Equal(t, "2026-09-15", order.DeliveredOn.Format("2006-01-02"))
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 3, order.OrderItems[0].Quantity)

	// stock is decremented
	updated, err := env.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StockQuantity)

	// and the cart is cleared
	cart, err := env.cartSvc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestOrderService_CreateFromCart_UniqueOrderNumbers(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	// frozen clock, so any two orders share a timestamp
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	env.orderSvc.now = func() time.Time { return at }

	product := env.seedProduct(t, "GUM-120", "$10.00", 50)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 1)
		require.NoError(t, err)

		order, err := env.orderSvc.CreateFromCart(ctx, 1, "")
		require.NoError(t, err)
		assert.Contains(t, order.OrderNumber, "ORD-")
		assert.False(t, seen[order.OrderNumber], "duplicate order number %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestOrderService_CreateFromCart_EmptyCart(t *testing.T) {
	env := setupOrderServiceTest(t)

	_, err := env.orderSvc.CreateFromCart(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_CreateFromCart_InsufficientStock(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-101", "$10.00", 2)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 5)
	require.NoError(t, err)

	_, err = env.orderSvc.CreateFromCart(ctx, 1, "")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// nothing was written
	unchanged, err := env.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.StockQuantity)

	cart, err := env.cartSvc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestOrderService_SetStatus_ApprovalIssuesInvoice(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-102", "$20.00", 10)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	order, err := env.orderSvc.CreateFromCart(ctx, 1, "")
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env.orderSvc.now = func() time.Time { return at }

	approved, err := env.orderSvc.SetStatus(order.ID, 9, model.OrderStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedByID)
	assert.Equal(t, uint(9), *approved.ApprovedByID)

	invoice, err := env.invoiceRepo.FindByOrderID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-2026-%d", order.ID), invoice.InvoiceNumber)
	assert.Equal(t, model.InvoiceStatusUnpaid, invoice.Status)
	assert.Equal(t, 2, invoice.ItemCount)
	assert.True(t, invoice.Amount.Equal(decimal.NewFromInt(40)))
	assert.True(t, invoice.DueAt.Equal(at.Add(30*24*time.Hour)), "due at %s", invoice.DueAt)
}

func TestOrderService_SetStatus_Terminal(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-103", "$10.00", 10)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	order, err := env.orderSvc.CreateFromCart(ctx, 1, "")
	require.NoError(t, err)

	_, err = env.orderSvc.SetStatus(order.ID, 9, model.OrderStatusRejected)
	require.NoError(t, err)

	// rejection issues no invoice
	_, err = env.invoiceRepo.FindByOrderID(order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = env.orderSvc.SetStatus(order.ID, 9, model.OrderStatusApproved)
	assert.ErrorIs(t, err, ErrOrderAlreadyDecided)
}

func TestOrderService_SetStatus_Validation(t *testing.T) {
	env := setupOrderServiceTest(t)

	_, err := env.orderSvc.SetStatus(1, 9, model.OrderStatusPending)
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	_, err = env.orderSvc.SetStatus(999, 9, model.OrderStatusApproved)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_MarkPaid(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-104", "$15.00", 10)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)
	order, err := env.orderSvc.CreateFromCart(ctx, 1, "")
	require.NoError(t, err)

	// pending orders cannot be paid
	_, err = env.orderSvc.MarkPaid(order.ID, "bank_transfer")
	assert.ErrorIs(t, err, ErrOrderNotApproved)

	_, err = env.orderSvc.SetStatus(order.ID, 9, model.OrderStatusApproved)
	require.NoError(t, err)

	paid, err := env.orderSvc.MarkPaid(order.ID, "bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, "bank_transfer", paid.PaymentMethod)
	assert.NotNil(t, paid.PaidAt)

	// the invoice settles with the order
	invoice, err := env.invoiceRepo.FindByOrderID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, invoice.Status)

	_, err = env.orderSvc.MarkPaid(order.ID, "bank_transfer")
	assert.ErrorIs(t, err, ErrPaymentAlreadyMade)
}

func TestOrderService_GetOrders_FiltersByUser(t *testing.T) {
	env := setupOrderServiceTest(t)
	ctx := context.Background()

	product := env.seedProduct(t, "GUM-105", "$10.00", 100)
	for _, userID := range []uint{1, 1, 2} {
		_, err := env.cartSvc.AddItem(ctx, userID, product.ID, 1)
		require.NoError(t, err)
		_, err = env.orderSvc.CreateFromCart(ctx, userID, "")
		require.NoError(t, err)
	}

	all, err := env.orderSvc.GetOrders("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := env.orderSvc.GetOrders("", 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := env.orderSvc.GetOrders(model.OrderStatusPending, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
