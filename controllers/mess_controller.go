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

type messPayload struct {
	Name        string `json:"name" validate:"required,min=4,max=80"`
	Description string `json:"description" validate:"required,min=4,max=120"`
	Status      string `json:"status" validate:"required,oneof=A NA"`
	Price       int    `json:"price" validate:"required,min=1"`
}

type MessController struct {
	Messes *services.MessService
}

func NewMessController(messes *services.MessService) *MessController {
	return &MessController{Messes: messes}
}

func (ctrl *MessController) GetAll(c *gin.Context) {
	messes, err := ctrl.Messes.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list mess plans")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, serializers.NewMessViews(messes))
}

func (ctrl *MessController) Create(c *gin.Context) {
	var payload messPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	mess := models.Mess{
		Name:        payload.Name,
		Description: payload.Description,
		Status:      payload.Status,
		Price:       payload.Price,
	}
	if err := ctrl.Messes.Create(&mess); err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("mess plan %q already exists", mess.Name))
			return
		}
		log.Printf("mess create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create mess plan")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, serializers.NewMessView(mess))
}

func (ctrl *MessController) Update(c *gin.Context) {
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

	if err := ctrl.Messes.Update(id, fields); err != nil {
		log.Printf("mess update failed (id=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update mess plan")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "mess plan updated"})
}

func (ctrl *MessController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Messes.Delete(id); err != nil {
		if errors.Is(err, services.ErrMessNotFound) {
			utils.JSONError(c, http.StatusNotFound, "mess plan not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete mess plan")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "mess plan deleted"})
}
