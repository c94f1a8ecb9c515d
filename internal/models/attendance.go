package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

type Attendance struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	Date       string             `json:"date" bson:"date"`
	Status     AttendanceStatus   `json:"status" bson:"status"`
	MarkedAt   time.Time          `json:"marked_at" bson:"marked_at"`
}

type MarkAttendanceInput struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

type DailySummary struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
}

// WeeklyDay is one day of the weekly overview. Present/Absent are whole
// percentages of the total employee count; the raw counts ride along.
type WeeklyDay struct {
	Day          string `json:"day"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	Date         string `json:"date"`
	PresentCount int64  `json:"present_count"`
	AbsentCount  int64  `json:"absent_count"`
	TotalMarked  int64  `json:"total_marked"`
	IsHoliday    bool   `json:"is_holiday"`
}

// ActivityItem is a recent attendance mark annotated for display.
// Styling stays with the caller; only the status enum is exposed.
type ActivityItem struct {
	User    string           `json:"user"`
	Action  string           `json:"action"`
	Time    string           `json:"time"`
	Initial string           `json:"initial"`
	Status  AttendanceStatus `json:"status"`
}
