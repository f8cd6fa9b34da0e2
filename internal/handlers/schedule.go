package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-ukr/ses-sub000/internal/repos"
	"github.com/kairos-ukr/ses-sub000/internal/schedule"
)

type ScheduleHandler struct {
	Repo *repos.ScheduleRepo
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{Repo: repos.NewScheduleRepo(db)}
}

type jobWorkerPayload struct {
	EmployeeID uint    `json:"employeeId" binding:"required"`
	Hours      float64 `json:"hours"`
}

type jobPayload struct {
	InstallationID uint               `json:"installationId"`
	Custom         bool               `json:"custom"`
	JobKey         string             `json:"jobKey"`
	Notes          string             `json:"notes"`
	Workers        []jobWorkerPayload `json:"workers"`
}

type saveDayRequest struct {
	Jobs []jobPayload `json:"jobs"`
}

type cancelJobRequest struct {
	InstallationID uint   `json:"installationId"`
	Custom         bool   `json:"custom"`
	JobKey         string `json:"jobKey"`
	Notes          string `json:"notes"`
	Reason         string `json:"reason" binding:"required"`
}

// GetWeek returns the snapshot for the week containing ?week= (default: now).
// The range always runs Monday through Sunday.
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	anchor := time.Now()
	if week := c.Query("week"); week != "" {
		parsed, err := schedule.ParseDateKey(week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
			return
		}
		anchor = parsed
	}

	start := schedule.StartOfWeek(anchor)
	end := schedule.AddDays(start, 6)

	snapshot, err := h.Repo.LoadWeek(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekStart": schedule.DateKey(start),
		"weekEnd":   schedule.DateKey(end),
		"days":      schedule.WeekKeys(start),
		"snapshot":  snapshot,
	})
}

// AvailableWorkers reports who may still be added to one of the date's
// persisted jobs, recomputed live from the stored day and its time off.
// ?exclude= narrows eligibility to non-listed departments.
func (h *ScheduleHandler) AvailableWorkers(c *gin.Context) {
	dateKey := c.Param("date")
	date, err := schedule.ParseDateKey(dateKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	jobIndex, err := strconv.Atoi(c.Query("job"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job index"})
		return
	}

	snapshot, err := h.Repo.LoadWeek(date, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load schedule"})
		return
	}

	jobs := snapshot.JobsByDate[dateKey]
	if jobIndex < 0 || jobIndex >= len(jobs) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	var filter schedule.RoleFilter
	if raw := c.Query("exclude"); raw != "" {
		filter = schedule.FieldWorkFilter(strings.Split(raw, ",")...)
	}

	index := schedule.BuildAvailabilityIndex(snapshot.TimeOff)
	available := schedule.AvailableWorkers(schedule.NewDraft(dateKey, jobs), jobIndex, index, snapshot.Employees, filter)

	off := make(map[uint]string)
	for _, employee := range snapshot.Employees {
		if status, ok := index.StatusFor(employee.CustomID, dateKey); ok {
			off[employee.CustomID] = status
		}
	}

	c.JSON(http.StatusOK, gin.H{"available": available, "off": off})
}

// SaveDay rebuilds the day's draft from the request by replaying the engine
// mutators, so every invariant the editing screens rely on is re-checked
// server-side, then previews and commits it in one step.
func (h *ScheduleHandler) SaveDay(c *gin.Context) {
	dateKey := c.Param("date")
	if _, err := schedule.ParseDateKey(dateKey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	var req saveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	draft, err := buildDraft(dateKey, req.Jobs)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkerBooked) {
			c.JSON(http.StatusConflict, gin.H{"error": "worker assigned to two jobs on the same day"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previewed, violations, err := draft.Preview()
	if err != nil {
		if errors.Is(err, schedule.ErrNotValid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "violations": violations})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "preview failed"})
		return
	}

	committed, err := h.Repo.SaveDay(previewed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": committed.DateKey, "jobs": committed.Jobs})
}

// CancelJob removes one job for the date. Reason "set-off" additionally marks
// every worker of the job as off for that day.
func (h *ScheduleHandler) CancelJob(c *gin.Context) {
	dateKey := c.Param("date")
	if _, err := schedule.ParseDateKey(dateKey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	var req cancelJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if !req.Custom && req.InstallationID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installationId or custom target required"})
		return
	}

	jobs, err := h.Repo.LoadDay(dateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load schedule"})
		return
	}

	job, ok := matchJob(jobs, req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	if err := h.Repo.CancelJob(dateKey, job, req.Reason); err != nil {
		if errors.Is(err, repos.ErrUnknownCancelReason) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reason"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cancel failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cancelled"})
}

func buildDraft(dateKey string, payloads []jobPayload) (schedule.Draft, error) {
	draft := schedule.NewDraft(dateKey, nil)
	var err error
	for i, payload := range payloads {
		if draft, err = draft.AddJob(); err != nil {
			return draft, err
		}
		if payload.Custom {
			key := uuid.Nil
			if payload.JobKey != "" {
				if key, err = uuid.Parse(payload.JobKey); err != nil {
					return draft, err
				}
			}
			if draft, err = draft.SetCustomTarget(i, key); err != nil {
				return draft, err
			}
		} else if payload.InstallationID != 0 {
			if draft, err = draft.SetInstallationTarget(i, payload.InstallationID); err != nil {
				return draft, err
			}
		}
		if payload.Notes != "" {
			if draft, err = draft.SetNotes(i, payload.Notes); err != nil {
				return draft, err
			}
		}
		for _, worker := range payload.Workers {
			if draft, err = draft.AddWorker(i, worker.EmployeeID); err != nil {
				return draft, err
			}
			if worker.Hours > 0 && worker.Hours != schedule.DefaultHours {
				if draft, err = draft.SetWorkerHours(i, worker.EmployeeID, worker.Hours); err != nil {
					return draft, err
				}
			}
		}
	}
	return draft, nil
}

func matchJob(jobs []schedule.Job, req cancelJobRequest) (schedule.Job, bool) {
	for _, job := range jobs {
		if !req.Custom {
			if !job.Custom && job.InstallationID == req.InstallationID {
				return job, true
			}
			continue
		}
		if !job.Custom {
			continue
		}
		if req.JobKey != "" {
			if job.JobKey.String() == req.JobKey {
				return job, true
			}
			continue
		}
		if job.Notes == req.Notes {
			return job, true
		}
	}
	return schedule.Job{}, false
}
