package repository

import (
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *model.Invoice) error
	FindByID(id uint) (*model.Invoice, error)
	FindByOrderID(orderID uint) (*model.Invoice, error)
	FindAll(status model.InvoiceStatus) ([]model.Invoice, error)
	Update(invoice *model.Invoice) error
	MarkOverdue(now time.Time) (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(invoice *model.Invoice) error {
	if err := r.db.Create(invoice).Error; err != nil {
		logger.Error("Failed to create invoice in database", err, map[string]interface{}{
			"invoice_number": invoice.InvoiceNumber,
			"order_id":       invoice.OrderID,
		})
		return err
	}

	logger.Debug("Invoice created in database", map[string]interface{}{
		"invoice_id":     invoice.ID,
		"invoice_number": invoice.InvoiceNumber,
	})
	return nil
}

func (r *invoiceRepository) FindByID(id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.Preload("Order").Preload("User").First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindByOrderID(orderID uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.Where("order_id = ?", orderID).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(status model.InvoiceStatus) ([]model.Invoice, error) {
	query := r.db.Preload("Order").Preload("User").Order("issued_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []model.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		logger.Error("Failed to list invoices", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(invoice *model.Invoice) error {
	if err := r.db.Save(invoice).Error; err != nil {
		logger.Error("Failed to update invoice in database", err, map[string]interface{}{
			"invoice_id": invoice.ID,
		})
		return err
	}
	return nil
}

// MarkOverdue flips unpaid invoices past their due date to overdue and
// returns how many rows changed
func (r *invoiceRepository) MarkOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&model.Invoice{}).
		Where("status = ? AND due_at < ?", model.InvoiceStatusUnpaid, now).
		Update("status", model.InvoiceStatusOverdue)
	if result.Error != nil {
		logger.Error("Failed to mark overdue invoices", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
