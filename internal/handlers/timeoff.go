package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/models"
	"github.com/kairos-ukr/ses-sub000/internal/repos"
	"github.com/kairos-ukr/ses-sub000/internal/schedule"
)

var errEndBeforeStart = errors.New("endDate must not be before startDate")

type TimeOffHandler struct {
	Repo *repos.TimeOffRepo
}

func NewTimeOffHandler(db *gorm.DB) *TimeOffHandler {
	return &TimeOffHandler{Repo: repos.NewTimeOffRepo(db)}
}

type createTimeOffRequest struct {
	EmployeeID uint     `json:"employeeId" binding:"required"`
	Status     string   `json:"status" binding:"required"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dates      []string `json:"dates"`
	Notes      string   `json:"notes"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	anchor := time.Now()
	from := schedule.StartOfWeek(anchor)
	to := schedule.AddDays(from, 6)

	if raw := c.Query("from"); raw != "" {
		parsed, err := schedule.ParseDateKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := schedule.ParseDateKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	entries, err := h.Repo.ListRange(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load time off"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create expands a range or an explicit date list into one entry per day.
// Days where the employee already has an entry are reported back as conflicts
// without failing the rest of the batch.
func (h *TimeOffHandler) Create(c *gin.Context) {
	var req createTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if !models.ValidTimeOffStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	dates, err := expandDates(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no dates given"})
		return
	}

	report, err := h.Repo.CreateRange(req.EmployeeID, dates, req.Status, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func expandDates(req createTimeOffRequest) ([]time.Time, error) {
	if len(req.Dates) > 0 {
		dates := make([]time.Time, 0, len(req.Dates))
		seen := make(map[string]struct{}, len(req.Dates))
		for _, raw := range req.Dates {
			date, err := schedule.ParseDateKey(raw)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[raw]; ok {
				continue
			}
			seen[raw] = struct{}{}
			dates = append(dates, date)
		}
		return dates, nil
	}

	start, err := schedule.ParseDateKey(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseDateKey(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, errEndBeforeStart
	}

	var dates []time.Time
	for d := start; !d.After(end); d = schedule.AddDays(d, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}
