package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

const accessTokenTTL = 24 * time.Hour

type signupPayload struct {
	Username string `json:"username" validate:"required,min=4,max=15"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=80"`
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	Auth   *services.AuthService
	Secret string
}

func NewAuthController(auth *services.AuthService, secret string) *AuthController {
	return &AuthController{Auth: auth, Secret: secret}
}

// Signup registers a new non-admin account.
func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	payload.Username = strings.TrimSpace(payload.Username)
	payload.Email = strings.TrimSpace(payload.Email)
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	user, err := ctrl.Auth.Register(payload.Username, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"success": false, "fields": gin.H{"username": err.Error()}})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"success": false, "fields": gin.H{"email": err.Error()}})
		default:
			log.Printf("signup failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, serializers.NewUserView(user))
}

// Login checks credentials and issues a bearer token. The response names
// the landing route for the caller's role, mirroring the portal's
// role-based redirect after login.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if fields := utils.ValidateStruct(payload); fields != nil {
		utils.JSONValidationError(c, fields)
		return
	}

	user, err := ctrl.Auth.Authenticate(strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Printf("login failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := utils.NewAccessToken(ctrl.Secret, user, accessTokenTTL)
	if err != nil {
		log.Printf("token signing failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	landing := middleware.DashboardRoute
	if user.Admin {
		landing = "/api/admin/dashboard"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    serializers.NewUserView(user),
		"landing": landing,
	})
}

// Logout acknowledges the client discarding its token. Tokens are
// stateless, so there is nothing to revoke server-side.
func (ctrl *AuthController) Logout(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Users lists every registered account for the admin directory.
func (ctrl *AuthController) Users(c *gin.Context) {
	users, err := ctrl.Auth.ListUsers()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, serializers.NewUserViews(users))
}
