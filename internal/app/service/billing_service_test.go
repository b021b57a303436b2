package service

import (
	"context"
	"testing"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approvedInvoice runs an order through the purchase flow far enough to have
// an unpaid invoice on the books.
func approvedInvoice(t *testing.T, env *orderTestEnv, sku string) (*model.Order, *model.Invoice) {
	ctx := context.Background()

	product := env.seedProduct(t, sku, "$10.00", 50)
	_, err := env.cartSvc.AddItem(ctx, 1, product.ID, 2)
	require.NoError(t, err)

	order, err := env.orderSvc.CreateFromCart(ctx, 1, "")
	require.NoError(t, err)
	order, err = env.orderSvc.SetStatus(order.ID, 9, model.OrderStatusApproved)
	require.NoError(t, err)

	invoice, err := env.invoiceRepo.FindByOrderID(order.ID)
	require.NoError(t, err)
	return order, invoice
}

func billingServiceFor(env *orderTestEnv) *billingService {
	return NewBillingService(
		env.invoiceRepo,
		repository.NewOrderRepository(env.db),
		env.db,
		nil,
	).(*billingService)
}

func TestBillingService_MarkPaid(t *testing.T) {
	env := setupOrderServiceTest(t)
	svc := billingServiceFor(env)

	order, invoice := approvedInvoice(t, env, "TIN-300")

	paid, err := svc.MarkPaid(invoice.ID, "wire")
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// payment lands on the order too
	settled, err := env.orderSvc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, settled.PaymentStatus)
	assert.Equal(t, "wire", settled.PaymentMethod)

	_, err = svc.MarkPaid(invoice.ID, "wire")
	assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)
}

func TestBillingService_MarkPaid_NotFound(t *testing.T) {
	env := setupOrderServiceTest(t)
	svc := billingServiceFor(env)

	_, err := svc.MarkPaid(404, "wire")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestBillingService_ListInvoices(t *testing.T) {
	env := setupOrderServiceTest(t)
	svc := billingServiceFor(env)

	_, first := approvedInvoice(t, env, "TIN-301")
	approvedInvoice(t, env, "TIN-302")

	all, err := svc.ListInvoices("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.MarkPaid(first.ID, "wire")
	require.NoError(t, err)

	unpaid, err := svc.ListInvoices(model.InvoiceStatusUnpaid)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)

	paid, err := svc.ListInvoices(model.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Len(t, paid, 1)
}

func TestBillingService_MarkOverdueInvoices(t *testing.T) {
	env := setupOrderServiceTest(t)
	svc := billingServiceFor(env)

	_, invoice := approvedInvoice(t, env, "TIN-303")

	// before the due date nothing changes
	count, err := svc.MarkOverdueInvoices()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	svc.now = func() time.Time { return invoice.DueAt.Add(24 * time.Hour) }

	count, err = svc.MarkOverdueInvoices()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	overdue, err := svc.GetInvoiceByID(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusOverdue, overdue.Status)

	// overdue invoices can still be paid
	paid, err := svc.MarkPaid(invoice.ID, "bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, paid.Status)

	// a second sweep finds nothing
	count, err = svc.MarkOverdueInvoices()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
