package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/config"
	"github.com/kairos-ukr/ses-sub000/internal/middleware"
	"github.com/kairos-ukr/ses-sub000/internal/models"
	"github.com/kairos-ukr/ses-sub000/internal/utils"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(db *gorm.DB, cfg config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := h.DB.First(&user, "email = ?", email).Error
	if err == gorm.ErrRecordNotFound && h.bootstrapAllowed(email) {
		user, err = h.bootstrapAdmin(email, req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	var employeeID uint
	if user.EmployeeCustomID != nil {
		employeeID = *user.EmployeeCustomID
	}
	token, err := utils.GenerateAccessToken(user.ID.String(), user.Role, employeeID, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get(middleware.ContextUserID)

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// bootstrapAllowed permits first-login admin creation only while the users
// table is empty and the email matches ADMIN_BOOTSTRAP_EMAIL.
func (h *AuthHandler) bootstrapAllowed(email string) bool {
	if h.Cfg.AdminBootstrap == "" || email != strings.ToLower(h.Cfg.AdminBootstrap) {
		return false
	}
	var count int64
	if err := h.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

func (h *AuthHandler) bootstrapAdmin(email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         "admin",
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
