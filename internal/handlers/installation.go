package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/models"
)

type InstallationHandler struct {
	DB *gorm.DB
}

type createInstallationRequest struct {
	CustomID uint   `json:"customId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Status   string `json:"status"`
}

type updateInstallationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Status  string `json:"status" binding:"required"`
}

func NewInstallationHandler(db *gorm.DB) *InstallationHandler {
	return &InstallationHandler{DB: db}
}

func validInstallationStatus(status string) bool {
	switch status {
	case models.InstallationStatusPlanned, models.InstallationStatusInProgress,
		models.InstallationStatusOnHold, models.InstallationStatusCompleted,
		models.InstallationStatusCancelled:
		return true
	}
	return false
}

// List returns assignable installations by default, newest first; ?all=true
// includes completed and cancelled ones.
func (h *InstallationHandler) List(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if c.Query("all") != "true" {
		query = query.Where("status IN ?", models.ActiveInstallationStatuses)
	}

	var installations []models.Installation
	if err := query.Find(&installations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load installations"})
		return
	}
	c.JSON(http.StatusOK, installations)
}

func (h *InstallationHandler) Create(c *gin.Context) {
	var req createInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.InstallationStatusPlanned
	}
	if !validInstallationStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var existing int64
	if err := h.DB.Model(&models.Installation{}).
		Where("custom_id = ?", req.CustomID).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "customId already in use"})
		return
	}

	installation := models.Installation{
		CustomID: req.CustomID,
		Name:     strings.TrimSpace(req.Name),
		Address:  req.Address,
		Status:   status,
	}
	if err := h.DB.Create(&installation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, installation)
}

func (h *InstallationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if !validInstallationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var installation models.Installation
	if err := h.DB.First(&installation, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "installation not found"})
		return
	}

	installation.Name = strings.TrimSpace(req.Name)
	installation.Address = req.Address
	installation.Status = req.Status
	if err := h.DB.Save(&installation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, installation)
}
