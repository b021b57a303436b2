package service

import (
	"errors"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/notify"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice has already been paid")
)

type BillingService interface {
	ListInvoices(status model.InvoiceStatus) ([]model.Invoice, error)
	GetInvoiceByID(id uint) (*model.Invoice, error)
	MarkPaid(invoiceID uint, method string) (*model.Invoice, error)
	MarkOverdueInvoices() (int64, error)
}

type billingService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	db          *gorm.DB
	hub         *notify.Hub
	now         func() time.Time
}

func NewBillingService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	db *gorm.DB,
	hub *notify.Hub,
) BillingService {
	return &billingService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		db:          db,
		hub:         hub,
		now:         time.Now,
	}
}

func (s *billingService) ListInvoices(status model.InvoiceStatus) ([]model.Invoice, error) {
	invoices, err := s.invoiceRepo.FindAll(status)
	if err != nil {
		logger.Error("Failed to list invoices", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return invoices, nil
}

func (s *billingService) GetInvoiceByID(id uint) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

// MarkPaid settles an invoice and records payment on its order in the same
// transaction. Overdue invoices can still be paid.
func (s *billingService) MarkPaid(invoiceID uint, method string) (*model.Invoice, error) {
	invoice, err := s.GetInvoiceByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == model.InvoiceStatusPaid {
		return nil, ErrInvoiceAlreadyPaid
	}

	now := s.now()
	tx := s.db.Begin()
	if err := tx.Model(&model.Invoice{}).Where("id = ?", invoice.ID).Updates(map[string]interface{}{
		"status":  model.InvoiceStatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to settle invoice", err, map[string]interface{}{
			"invoice_id": invoiceID,
		})
		return nil, err
	}

	if err := tx.Model(&model.Order{}).Where("id = ?", invoice.OrderID).Updates(map[string]interface{}{
		"payment_status": model.PaymentStatusPaid,
		"payment_method": method,
		"paid_at":        now,
	}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to record payment on order", err, map[string]interface{}{
			"invoice_id": invoiceID,
			"order_id":   invoice.OrderID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Invoice paid", map[string]interface{}{
		"invoice_id":     invoiceID,
		"invoice_number": invoice.InvoiceNumber,
		"method":         method,
	})
	if s.hub != nil {
		s.hub.Broadcast(notify.Event{
			Type: "invoice.paid",
			Payload: map[string]interface{}{
				"invoice_id":     invoice.ID,
				"invoice_number": invoice.InvoiceNumber,
			},
		})
	}

	return s.invoiceRepo.FindByID(invoice.ID)
}

// MarkOverdueInvoices flips unpaid invoices whose due date has passed to
// overdue. The scheduler runs this daily.
func (s *billingService) MarkOverdueInvoices() (int64, error) {
	count, err := s.invoiceRepo.MarkOverdue(s.now())
	if err != nil {
		logger.Error("Failed to mark overdue invoices", err, nil)
		return 0, err
	}

	if count > 0 {
		logger.Info("Invoices marked overdue", map[string]interface{}{
			"count": count,
		})
		if s.hub != nil {
			s.hub.Broadcast(notify.Event{
				Type: "invoice.overdue",
				Payload: map[string]interface{}{
					"count": count,
				},
			})
		}
	}
	return count, nil
}
