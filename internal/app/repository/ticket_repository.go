package repository

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ticket *model.Ticket) error
	FindByID(id uint) (*model.Ticket, error)
	FindByUserID(userID uint) ([]model.Ticket, error)
	Update(ticket *model.Ticket) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *model.Ticket) error {
	if err := r.db.Create(ticket).Error; err != nil {
		logger.Error("Failed to create ticket in database", err, map[string]interface{}{
			"user_id": ticket.UserID,
		})
		return err
	}
	return nil
}

func (r *ticketRepository) FindByID(id uint) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.db.Preload("User").First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindByUserID(userID uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ticket *model.Ticket) error {
	return r.db.Save(ticket).Error
}
