package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrSubjectRequired = errors.New("subject is required")
	ErrMessageRequired = errors.New("message is required")
	ErrTicketNotYours  = errors.New("ticket belongs to another user")
	ErrTicketClosed    = errors.New("ticket is already closed")
)

type TicketService interface {
	CreateTicket(userID uint, subject, message string) (*model.Ticket, error)
	ListTickets(userID uint) ([]model.Ticket, error)
	CloseTicket(userID, ticketID uint) (*model.Ticket, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
}

func NewTicketService(ticketRepo repository.TicketRepository) TicketService {
	return &ticketService{ticketRepo: ticketRepo}
}

func (s *ticketService) CreateTicket(userID uint, subject, message string) (*model.Ticket, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	if message == "" {
		return nil, ErrMessageRequired
	}

	ticket := &model.Ticket{
		Reference: fmt.Sprintf("TKT-%s", uuid.New().String()),
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Status:    model.TicketStatusOpen,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		logger.Error("Failed to create support ticket", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Support ticket created", map[string]interface{}{
		"user_id":   userID,
		"reference": ticket.Reference,
	})
	return ticket, nil
}

func (s *ticketService) ListTickets(userID uint) ([]model.Ticket, error) {
	return s.ticketRepo.FindByUserID(userID)
}

func (s *ticketService) CloseTicket(userID, ticketID uint) (*model.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, ErrTicketNotYours
	}
	if ticket.Status == model.TicketStatusClosed {
		return nil, ErrTicketClosed
	}

	ticket.Status = model.TicketStatusClosed
	if err := s.ticketRepo.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
