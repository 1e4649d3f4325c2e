package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type ticketPayload struct {
	Title       string `json:"title" validate:"required,min=4,max=80"`
	Description string `json:"description" validate:"required,min=4,max=120"`
}

type ticketReplyPayload struct {
	Description string `json:"description" validate:"required,min=4,max=120"`
}

type TicketController struct {
	Tickets *services.TicketService
}

func NewTicketController(tickets *services.TicketService) *TicketController {
	return &TicketController{Tickets: tickets}
}

// Create opens a support ticket for the caller.
func (ctrl *TicketController) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var payload ticketPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	ticket, err := ctrl.Tickets.Create(user.ID, payload.Title, payload.Description)
	if err != nil {
		log.Printf("ticket create failed (user=%d): %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create ticket")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, serializers.NewTicketView(ticket))
}

// ListOwn returns the caller's tickets and the reply pool to match against.
func (ctrl *TicketController) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tickets, replies, err := ctrl.Tickets.ListForUser(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tickets")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tickets": serializers.NewTicketViews(tickets),
		"replies": serializers.NewTicketReplyViews(replies),
	})
}

// ListAll returns every ticket and reply for admin review.
func (ctrl *TicketController) ListAll(c *gin.Context) {
	tickets, replies, err := ctrl.Tickets.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tickets")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tickets": serializers.NewTicketViews(tickets),
		"replies": serializers.NewTicketReplyViews(replies),
	})
}

// Reply closes the ticket and records the admin's answer.
func (ctrl *TicketController) Reply(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	ticketID, ok := parseID(c)
	if !ok {
		return
	}

	var payload ticketReplyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	reply, err := ctrl.Tickets.Reply(admin.ID, ticketID, payload.Description)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			utils.JSONError(c, http.StatusNotFound, "ticket not found")
			return
		}
		log.Printf("ticket reply failed (ticket=%d): %v", ticketID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to reply")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, serializers.NewTicketReplyView(reply))
}

// Delete removes a ticket and its reply, if any.
func (ctrl *TicketController) Delete(c *gin.Context) {
	ticketID, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Tickets.Delete(ticketID); err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			utils.JSONError(c, http.StatusNotFound, "ticket not found")
			return
		}
		log.Printf("ticket delete failed (ticket=%d): %v", ticketID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete ticket")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "ticket deleted"})
}
