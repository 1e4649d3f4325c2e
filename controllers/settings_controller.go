package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type settingsPayload struct {
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	ContactInfo datatypes.JSON `json:"contact_info"`
	MessTimings datatypes.JSON `json:"mess_timings"`
}

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (ctrl *SettingsController) Get(c *gin.Context) {
	setting, err := ctrl.Settings.Get()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func (ctrl *SettingsController) Update(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	setting, err := ctrl.Settings.Update(models.PortalSetting{
		Name:        payload.Name,
		Address:     payload.Address,
		Phone:       payload.Phone,
		Email:       payload.Email,
		ContactInfo: payload.ContactInfo,
		MessTimings: payload.MessTimings,
	})
	if err != nil {
		log.Printf("settings update failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
