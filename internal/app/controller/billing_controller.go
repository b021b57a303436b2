package controller

import (
	"errors"
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/gin-gonic/gin"
)

type BillingController struct {
	billingService service.BillingService
}

func NewBillingController(billingService service.BillingService) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

type PayInvoiceRequest struct {
	Method string `json:"method"`
}

// ListInvoices returns invoices, optionally filtered by status
// GET /api/v1/invoices
func (ctrl *BillingController) ListInvoices(c *gin.Context) {
	status := model.InvoiceStatus(c.Query("status"))

	invoices, err := ctrl.billingService.ListInvoices(status)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list invoices")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"count":    len(invoices),
	})
}

// GetInvoice returns one invoice
// GET /api/v1/invoices/:id
func (ctrl *BillingController) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid invoice id")
		return
	}

	invoice, err := ctrl.billingService.GetInvoiceByID(id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			apperrors.NotFound(c, apperrors.InvoiceNotFound, "Invoice not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// PayInvoice settles an invoice and its order
// PUT /api/v1/invoices/:id/pay
func (ctrl *BillingController) PayInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid invoice id")
		return
	}

	var req PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}
	if req.Method == "" {
		req.Method = "bank_transfer"
	}

	invoice, err := ctrl.billingService.MarkPaid(id, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			apperrors.NotFound(c, apperrors.InvoiceNotFound, "Invoice not found")
		case errors.Is(err, service.ErrInvoiceAlreadyPaid):
			apperrors.Conflict(c, apperrors.InvoiceAlreadyPaid, "Invoice has already been paid")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "pay invoice")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice paid",
		"invoice": invoice,
	})
}
