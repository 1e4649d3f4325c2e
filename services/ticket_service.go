package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketService struct {
	DB *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{DB: db}
}

// Create opens a support ticket in pending status.
func (s *TicketService) Create(userID uint, title, description string) (models.Ticket, error) {
	ticket := models.Ticket{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.TicketStatusPending,
	}
	if err := s.DB.Create(&ticket).Error; err != nil {
		return models.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

// ListForUser returns the user's tickets alongside every reply, so the
// portal can match replies to tickets client-side.
func (s *TicketService) ListForUser(userID uint) ([]models.Ticket, []models.TicketReply, error) {
	var tickets []models.Ticket
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&tickets).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	var replies []models.TicketReply
	if err := s.DB.Order("id").Find(&replies).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return tickets, replies, nil
}

// ListAll returns every ticket and reply for admin review.
func (s *TicketService) ListAll() ([]models.Ticket, []models.TicketReply, error) {
	var tickets []models.Ticket
	if err := s.DB.Order("id").Find(&tickets).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	var replies []models.TicketReply
	if err := s.DB.Order("id").Find(&replies).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return tickets, replies, nil
}

// Reply closes the ticket and records the admin's reply. Both writes run in
// one transaction so a ticket can never end up closed with no reply row.
func (s *TicketService) Reply(adminID, ticketID uint, description string) (models.TicketReply, error) {
	var reply models.TicketReply
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.First(&ticket, ticketID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		if err := tx.Model(&ticket).Update("status", models.TicketStatusClosed).Error; err != nil {
			return fmt.Errorf("failed to close ticket: %w", err)
		}

		reply = models.TicketReply{
			TicketID:    ticket.ID,
			UserID:      adminID,
			Description: description,
		}
		if err := tx.Create(&reply).Error; err != nil {
			return fmt.Errorf("failed to create reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.TicketReply{}, err
	}
	return reply, nil
}

// Delete removes a ticket together with its first reply, if one exists.
// Further replies are left behind; the portal assumes one reply per ticket.
func (s *TicketService) Delete(ticketID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.First(&ticket, ticketID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		var reply models.TicketReply
		err := tx.Where("ticket_id = ?", ticketID).Order("id").First(&reply).Error
		if err == nil {
			if err := tx.Delete(&models.TicketReply{}, reply.ID).Error; err != nil {
				return fmt.Errorf("failed to delete reply: %w", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load reply: %w", err)
		}

		if err := tx.Delete(&models.Ticket{}, ticketID).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}
