package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type announcementPayload struct {
	Title       string `json:"title" validate:"required,min=4,max=80"`
	Description string `json:"description" validate:"required,min=4,max=120"`
}

type AnnouncementController struct {
	Announcements *services.AnnouncementService
}

func NewAnnouncementController(announcements *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Announcements: announcements}
}

func (ctrl *AnnouncementController) List(c *gin.Context) {
	list, err := ctrl.Announcements.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list announcements")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, serializers.NewAnnouncementViews(list))
}

func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var payload announcementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	a, err := ctrl.Announcements.Create(payload.Title, payload.Description)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "fields": gin.H{"title": err.Error()}})
			return
		}
		log.Printf("announcement create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create announcement")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, serializers.NewAnnouncementView(a))
}

func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Announcements.Delete(id); err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			utils.JSONError(c, http.StatusNotFound, "announcement not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete announcement")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "announcement deleted"})
}
