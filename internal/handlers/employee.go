package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/models"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

type createEmployeeRequest struct {
	CustomID    uint     `json:"customId" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Departments []string `json:"departments"`
	Position    string   `json:"position"`
	Phone       string   `json:"phone"`
}

type updateEmployeeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Departments []string `json:"departments"`
	Position    string   `json:"position"`
	Phone       string   `json:"phone"`
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{DB: db}
}

// List is ordered by name; ?department= narrows to one department.
func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.DB.Order("name asc").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}

	if department := strings.TrimSpace(c.Query("department")); department != "" {
		filtered := employees[:0]
		for _, employee := range employees {
			for _, dep := range employee.Departments {
				if dep == department {
					filtered = append(filtered, employee)
					break
				}
			}
		}
		employees = filtered
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var existing int64
	if err := h.DB.Model(&models.Employee{}).
		Where("custom_id = ?", req.CustomID).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "customId already in use"})
		return
	}

	employee := models.Employee{
		CustomID:    req.CustomID,
		Name:        strings.TrimSpace(req.Name),
		Departments: req.Departments,
		Position:    req.Position,
		Phone:       req.Phone,
	}
	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	employee.Name = strings.TrimSpace(req.Name)
	employee.Departments = req.Departments
	employee.Position = req.Position
	employee.Phone = req.Phone
	if err := h.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.DB.Delete(&models.Employee{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
