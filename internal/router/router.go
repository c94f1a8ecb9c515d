package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/handlers"
)

func Setup(r *gin.Engine, eh *handlers.EmployeeHandler, ah *handlers.AttendanceHandler, nh *handlers.NotificationHandler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to HRMS Lite API"})
	})

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	employees := r.Group("/api/employees")
	{
		employees.POST("", eh.CreateEmployee)
		employees.GET("", eh.ListEmployees)
		employees.GET("/:id", eh.GetEmployee)
		employees.PUT("/:id", eh.UpdateEmployee)
		employees.DELETE("/:id", eh.DeleteEmployee)
	}

	attendance := r.Group("/api/attendance")
	{
		attendance.POST("", ah.MarkAttendance)
		attendance.GET("/date/:date", ah.ByDate)
		attendance.GET("/stats/summary", ah.DailySummary)
		attendance.GET("/stats/weekly", ah.WeeklySummary)
		attendance.GET("/stats/recent", ah.RecentActivity)
		attendance.GET("/:employee_id", ah.History)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("", nh.ListNotifications)
		notifications.GET("/unread/count", nh.UnreadCount)
		notifications.PUT("/:id/read", nh.MarkRead)
		notifications.PUT("/read-all", nh.MarkAllRead)
	}
}
