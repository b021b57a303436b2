package controller

import (
	"errors"
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type TicketController struct {
	ticketService service.TicketService
}

func NewTicketController(ticketService service.TicketService) *TicketController {
	return &TicketController{
		ticketService: ticketService,
	}
}

type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateTicket files a support ticket
// POST /api/v1/tickets
func (ctrl *TicketController) CreateTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	ticket, err := ctrl.ticketService.CreateTicket(userID, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Subject is required")
		case errors.Is(err, service.ErrMessageRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Message is required")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create ticket")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket submitted",
		"ticket":  ticket,
	})
}

// ListTickets returns the caller's tickets
// GET /api/v1/tickets
func (ctrl *TicketController) ListTickets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	tickets, err := ctrl.ticketService.ListTickets(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list tickets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// CloseTicket closes one of the caller's tickets
// PUT /api/v1/tickets/:id/close
func (ctrl *TicketController) CloseTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	ticketID, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid ticket id")
		return
	}

	ticket, err := ctrl.ticketService.CloseTicket(userID, ticketID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Ticket not found")
		case errors.Is(err, service.ErrTicketNotYours):
			apperrors.Forbidden(c, "Ticket belongs to another user")
		case errors.Is(err, service.ErrTicketClosed):
			apperrors.Conflict(c, apperrors.ResourceConflict, "Ticket is already closed")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "close ticket")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket closed",
		"ticket":  ticket,
	})
}
