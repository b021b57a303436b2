package service

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/shopspring/decimal"
)

// DashboardStats backs the overview and analytics pages.
type DashboardStats struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalOrders         int64           `json:"total_orders"`
	PendingOrders       int64           `json:"pending_orders"`
	ApprovedOrders      int64           `json:"approved_orders"`
	RejectedOrders      int64           `json:"rejected_orders"`
	ProductCount        int64           `json:"product_count"`
	DistributorCount    int64           `json:"distributor_count"`
	PendingApplications int64           `json:"pending_applications"`
	UnpaidInvoices      int64           `json:"unpaid_invoices"`
	OverdueInvoices     int64           `json:"overdue_invoices"`
}

type AnalyticsService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type analyticsService struct {
	orderRepo       repository.OrderRepository
	invoiceRepo     repository.InvoiceRepository
	productRepo     repository.ProductRepository
	distributorRepo repository.DistributorRepository
}

func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	distributorRepo repository.DistributorRepository,
) AnalyticsService {
	return &analyticsService{
		orderRepo:       orderRepo,
		invoiceRepo:     invoiceRepo,
		productRepo:     productRepo,
		distributorRepo: distributorRepo,
	}
}

func (s *analyticsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	revenue, err := s.orderRepo.SumPaidTotal()
	if err != nil {
		logger.Error("Failed to sum paid revenue", err, nil)
		return nil, err
	}
	stats.TotalRevenue = revenue

	if stats.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(model.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedOrders, err = s.orderRepo.CountByStatus(model.OrderStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedOrders, err = s.orderRepo.CountByStatus(model.OrderStatusRejected); err != nil {
		return nil, err
	}

	if stats.ProductCount, err = s.productRepo.Count(); err != nil {
		return nil, err
	}

	if stats.DistributorCount, err = s.distributorRepo.CountProfiles(model.ProfileStatusApproved); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.distributorRepo.CountProfiles(model.ProfileStatusPending); err != nil {
		return nil, err
	}

	unpaid, err := s.invoiceRepo.FindAll(model.InvoiceStatusUnpaid)
	if err != nil {
		return nil, err
	}
	stats.UnpaidInvoices = int64(len(unpaid))

	overdue, err := s.invoiceRepo.FindAll(model.InvoiceStatusOverdue)
	if err != nil {
		return nil, err
	}
	stats.OverdueInvoices = int64(len(overdue))

	return stats, nil
}
