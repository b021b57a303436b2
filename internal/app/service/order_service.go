package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/notify"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientStock   = errors.New("insufficient product stock")
	ErrOrderAlreadyDecided = errors.New("order has already been approved or rejected")
	ErrInvalidOrderStatus  = errors.New("status must be approved or rejected")
	ErrOrderNotApproved    = errors.New("only approved orders can be paid")
	ErrPaymentAlreadyMade  = errors.New("order has already been paid")
)

// Invoices fall due this long after the approval that issues them.
const invoiceTerm = 30 * 24 * time.Hour

type OrderService interface {
	CreateFromCart(ctx context.Context, userID uint, deliveredOn string) (*model.Order, error)
	GetOrders(status model.OrderStatus, userID uint) ([]model.Order, error)
	GetOrderByID(orderID uint) (*model.Order, error)
	SetStatus(orderID, reviewerID uint, status model.OrderStatus) (*model.Order, error)
	MarkPaid(orderID uint, method string) (*model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	cartStore   repository.CartStore
	db          *gorm.DB
	hub         *notify.Hub
	now         func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	cartStore repository.CartStore,
	db *gorm.DB,
	hub *notify.Hub,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		cartStore:   cartStore,
		db:          db,
		hub:         hub,
		now:         time.Now,
	}
}

// CreateFromCart turns the user's cart into a pending order, decrements
// stock, and clears the cart. The whole write runs in one transaction.
func (s *orderService) CreateFromCart(ctx context.Context, userID uint, deliveredOn string) (*model.Order, error) {
	logger.Info("Creating order from cart", map[string]interface{}{
		"user_id": userID,
	})

	lines, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	if len(lines) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order creation, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	total := decimal.Zero
	var orderItems []model.OrderItem

	for _, line := range lines {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sku = ?", line.SKU).
			First(&product).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Product not found during order creation", map[string]interface{}{
					"user_id": userID,
					"sku":     line.SKU,
				})
				return nil, ErrProductNotFound
			}
			logger.Error("Failed to fetch product during order creation", err, map[string]interface{}{
				"user_id": userID,
				"sku":     line.SKU,
			})
			return nil, err
		}

		if product.StockQuantity < line.Qty {
			tx.Rollback()
			logger.Warn("Order creation failed: insufficient stock", map[string]interface{}{
				"user_id":   userID,
				"sku":       line.SKU,
				"requested": line.Qty,
				"available": product.StockQuantity,
			})
			return nil, ErrInsufficientStock
		}

		unitPrice := decimal.NewFromInt(int64(util.ParsePrice(product.YourPrice)))
		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Qty,
			UnitPrice: unitPrice,
		})
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Qty))))

		if err := tx.Model(&model.Product{}).
			Where("id = ?", product.ID).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Qty)).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to update product stock", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
			})
			return nil, err
		}
	}

	var deliveredAt *time.Time
	if deliveredOn != "" {
		if ts, err := time.Parse("2006-01-02", deliveredOn); err == nil {
			deliveredAt = &ts
		} else {
			logger.Warn("Ignoring unparseable delivery date", map[string]interface{}{
				"user_id":      userID,
				"delivered_on": deliveredOn,
			})
		}
	}

	order := &model.Order{
		OrderNumber:   s.generateOrderNumber(),
		UserID:        userID,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Total:         total,
		DeliveredOn:   deliveredAt,
		OrderItems:    orderItems,
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
			"total":   total.String(),
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": order.ID,
		})
		return nil, err
	}

	if err := s.cartStore.Clear(ctx, userID); err != nil {
		// the order is committed; a stale cart can be cleared later
		logger.Warn("Failed to clear cart after order creation", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"user_id":      userID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        total.String(),
		"item_count":   len(orderItems),
	})
	s.broadcast("order.created", order)

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetOrders(status model.OrderStatus, userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(status, userID)
	if err != nil {
		logger.Error("Failed to fetch orders", err, map[string]interface{}{
			"status":  status,
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}
	return order, nil
}

// SetStatus decides a pending order. Approval issues an invoice for the
// order total; both outcomes are terminal.
func (s *orderService) SetStatus(orderID, reviewerID uint, status model.OrderStatus) (*model.Order, error) {
	if status != model.OrderStatusApproved && status != model.OrderStatusRejected {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPending {
		logger.Warn("Order already decided", map[string]interface{}{
			"order_id": orderID,
			"status":   order.Status,
		})
		return nil, ErrOrderAlreadyDecided
	}

	order.Status = status
	order.ApprovedByID = &reviewerID

	tx := s.db.Begin()
	if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"status":         status,
		"approved_by_id": reviewerID,
	}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to update order status", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if status == model.OrderStatusApproved {
		now := s.now()
		due := now.Add(invoiceTerm)
		invoice := &model.Invoice{
			InvoiceNumber: s.generateInvoiceNumber(order),
			OrderID:       order.ID,
			UserID:        order.UserID,
			ItemCount:     order.ItemCount(),
			Amount:        order.Total,
			Status:        model.InvoiceStatusUnpaid,
			IssuedAt:      now,
			DueAt:         due,
		}
		if err := tx.Create(invoice).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to issue invoice", err, map[string]interface{}{
				"order_id": orderID,
			})
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit status update", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	logger.Info("Order reviewed", map[string]interface{}{
		"order_id":     orderID,
		"order_number": order.OrderNumber,
		"status":       status,
		"reviewer_id":  reviewerID,
	})
	s.broadcast("order."+string(status), order)

	return s.orderRepo.FindByID(order.ID)
}

// MarkPaid records payment against an approved order and settles its
// invoice in the same transaction.
func (s *orderService) MarkPaid(orderID uint, method string) (*model.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusApproved {
		return nil, ErrOrderNotApproved
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil, ErrPaymentAlreadyMade
	}

	now := s.now()
	tx := s.db.Begin()
	if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"payment_status": model.PaymentStatusPaid,
		"payment_method": method,
		"paid_at":        now,
	}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to record payment", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if err := tx.Model(&model.Invoice{}).Where("order_id = ?", order.ID).Updates(map[string]interface{}{
		"status":  model.InvoiceStatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to settle invoice", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Order paid", map[string]interface{}{
		"order_id": orderID,
		"method":   method,
	})
	s.broadcast("order.paid", order)

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) generateOrderNumber() string {
	// order_number is unique; the clock alone collides when two orders land
	// in the same millisecond, so a random suffix carries the uniqueness
	return fmt.Sprintf("ORD-%s-%s", s.now().Format("20060102"), uuid.New().String()[:8])
}

func (s *orderService) generateInvoiceNumber(order *model.Order) string {
	return fmt.Sprintf("INV-%d-%d", s.now().Year(), order.ID)
}

func (s *orderService) broadcast(event string, order *model.Order) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(notify.Event{
		Type: event,
		Payload: map[string]interface{}{
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"status":       order.Status,
		},
	})
}
