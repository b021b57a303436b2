package repository

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindAll(status model.OrderStatus, userID uint) ([]model.Order, error)
	Update(order *model.Order) error
	CountByStatus(status model.OrderStatus) (int64, error)
	Count() (int64, error)
	SumPaidTotal() (decimal.Decimal, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"order_number": order.OrderNumber,
			"user_id":      order.UserID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("User").
		Preload("ApprovedBy").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll filters by status and/or placing user; zero values mean no filter
func (r *orderRepository) FindAll(status model.OrderStatus, userID uint) ([]model.Order, error) {
	query := r.db.
		Preload("OrderItems").
		Preload("User").
		Preload("ApprovedBy").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders", err, map[string]interface{}{
			"status":  status,
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(order *model.Order) error {
	if err := r.db.Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) CountByStatus(status model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Count(&count).Error
	return count, err
}

// SumPaidTotal returns total revenue across paid orders
func (r *orderRepository) SumPaidTotal() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&model.Order{}).
		Where("payment_status = ?", model.PaymentStatusPaid).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
