package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
	"hrms-lite/internal/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// POST /api/attendance
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var in models.MarkAttendanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	record, err := h.attendance.Mark(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GET /api/attendance/date/:date
func (h *AttendanceHandler) ByDate(c *gin.Context) {
	records, err := h.attendance.ByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/attendance/:employee_id
func (h *AttendanceHandler) History(c *gin.Context) {
	records, err := h.attendance.History(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/attendance/stats/summary
func (h *AttendanceHandler) DailySummary(c *gin.Context) {
	summary, err := h.attendance.DailySummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/attendance/stats/weekly
func (h *AttendanceHandler) WeeklySummary(c *gin.Context) {
	days, err := h.attendance.WeeklySummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// GET /api/attendance/stats/recent
func (h *AttendanceHandler) RecentActivity(c *gin.Context) {
	items, err := h.attendance.RecentActivity(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
