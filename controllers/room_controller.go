package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type roomPayload struct {
	Name             string `json:"name" validate:"required,min=4,max=80"`
	Size             int    `json:"size" validate:"required,min=1"`
	AttachedBathroom bool   `json:"attached_bathroom"`
	Status           string `json:"status" validate:"required,oneof=A NA"`
	Price            int    `json:"price" validate:"required,min=1"`
	Description      string `json:"description" validate:"required,min=4,max=120"`
}

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (ctrl *RoomController) GetAll(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, serializers.NewRoomViews(rooms))
}

func (ctrl *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	room := models.Room{
		Name:             payload.Name,
		Size:             payload.Size,
		AttachedBathroom: payload.AttachedBathroom,
		Status:           payload.Status,
		Price:            payload.Price,
		Description:      payload.Description,
	}
	if err := ctrl.Rooms.Create(&room); err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("room %q already exists", room.Name))
			return
		}
		log.Printf("room create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, serializers.NewRoomView(room))
}

func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	if err := ctrl.Rooms.Update(id, fields); err != nil {
		log.Printf("room update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Rooms.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
