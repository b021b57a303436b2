package scheduler

import (
	"github.com/Harry9429/Distro-app/internal/app/service"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/robfig/cron/v3"
)

// BillingScheduler flips unpaid invoices past their due date to overdue.
type BillingScheduler struct {
	cron           *cron.Cron
	billingService service.BillingService
}

func NewBillingScheduler(billingService service.BillingService) *BillingScheduler {
	return &BillingScheduler{
		cron:           cron.New(),
		billingService: billingService,
	}
}

// Start schedules the overdue sweep daily at 6:00 AM.
func (s *BillingScheduler) Start() error {
	_, err := s.cron.AddFunc("0 6 * * *", func() {
		logger.Info("Starting scheduled overdue invoice sweep", nil)

		count, err := s.billingService.MarkOverdueInvoices()
		if err != nil {
			logger.Error("Failed to sweep overdue invoices", err)
			return
		}

		logger.Info("Overdue invoice sweep finished", map[string]interface{}{
			"marked_overdue": count,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for overdue sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Billing scheduler started (daily at 6:00 AM)", nil)

	return nil
}

// Stop halts the scheduler.
func (s *BillingScheduler) Stop() {
	logger.Info("Stopping billing scheduler...", nil)
	s.cron.Stop()
	logger.Info("Billing scheduler stopped", nil)
}
