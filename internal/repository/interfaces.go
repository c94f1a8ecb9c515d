// Package repository provides data access to the application's collections.
package repository

import (
	"context"

	"hrms-lite/internal/models"
)

// EmployeeRepository defines persistence for employee records, keyed by
// the business employee_id rather than the storage id.
type EmployeeRepository interface {
	Insert(ctx context.Context, e *models.Employee) (*models.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	FindAll(ctx context.Context, limit int64) ([]models.Employee, error)
	Update(ctx context.Context, employeeID string, in models.UpdateEmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

// AttendanceRepository defines persistence for per-employee per-date
// attendance records.
type AttendanceRepository interface {
	// Upsert writes the record for (employee_id, date) atomically and
	// reports whether a new document was inserted as opposed to an
	// existing one updated.
	Upsert(ctx context.Context, a *models.Attendance) (*models.Attendance, bool, error)
	FindByEmployee(ctx context.Context, employeeID string, limit int64) ([]models.Attendance, error)
	FindByDate(ctx context.Context, date string, limit int64) ([]models.Attendance, error)
	CountByDateStatus(ctx context.Context, date string, status models.AttendanceStatus) (int64, error)
	FindRecentlyMarked(ctx context.Context, limit int64) ([]models.Attendance, error)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}

// NotificationRepository defines persistence for notification records.
type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
	FindRecent(ctx context.Context, limit int64) ([]models.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	// MarkRead reports whether a record with the given id exists;
	// marking an already-read record still counts as a match.
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) error
}
