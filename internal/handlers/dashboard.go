package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/models"
	"github.com/kairos-ukr/ses-sub000/internal/schedule"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	var employeeCount int64
	_ = h.DB.Model(&models.Employee{}).Count(&employeeCount).Error

	var activeInstallations int64
	_ = h.DB.Model(&models.Installation{}).
		Where("status IN ?", models.ActiveInstallationStatuses).Count(&activeInstallations).Error

	today, _ := schedule.ParseDateKey(schedule.DateKey(time.Now()))

	var assignedToday int64
	_ = h.DB.Model(&models.AssignmentRow{}).Where("date = ?", today).Count(&assignedToday).Error

	var offToday int64
	_ = h.DB.Model(&models.TimeOffEntry{}).Where("date = ?", today).Count(&offToday).Error

	c.JSON(http.StatusOK, gin.H{
		"employees":           employeeCount,
		"activeInstallations": activeInstallations,
		"assignedToday":       assignedToday,
		"offToday":            offToday,
	})
}
