package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hrms-lite/internal/models"
)

// In-memory implementations of the repository interfaces. They back the
// service and router tests and behave like the Mongo implementations,
// including the uniqueness rules the indexes enforce.

type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees []models.Employee
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{}
}

func (r *MemoryEmployeeRepository) Insert(_ context.Context, e *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.employees {
		if existing.EmployeeID == e.EmployeeID {
			return nil, fmt.Errorf("employee %s: %w", e.EmployeeID, models.ErrConflict)
		}
	}
	e.ID = primitive.NewObjectID()
	r.employees = append(r.employees, *e)
	return e, nil
}

func (r *MemoryEmployeeRepository) FindByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeeID == employeeID {
			found := e
			return &found, nil
		}
	}
	return nil, fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
}

func (r *MemoryEmployeeRepository) FindAll(_ context.Context, limit int64) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) Update(_ context.Context, employeeID string, in models.UpdateEmployeeInput) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].EmployeeID != employeeID {
			continue
		}
		if in.FullName != nil {
			r.employees[i].FullName = *in.FullName
		}
		if in.Email != nil {
			r.employees[i].Email = *in.Email
		}
		if in.Department != nil {
			r.employees[i].Department = *in.Department
		}
		updated := r.employees[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
}

func (r *MemoryEmployeeRepository) Delete(_ context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].EmployeeID == employeeID {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
}

func (r *MemoryEmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.employees)), nil
}

type MemoryAttendanceRepository struct {
	mu      sync.Mutex
	records []models.Attendance
}

func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{}
}

func (r *MemoryAttendanceRepository) Upsert(_ context.Context, a *models.Attendance) (*models.Attendance, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].EmployeeID == a.EmployeeID && r.records[i].Date == a.Date {
			r.records[i].Status = a.Status
			r.records[i].MarkedAt = a.MarkedAt
			updated := r.records[i]
			return &updated, false, nil
		}
	}
	a.ID = primitive.NewObjectID()
	r.records = append(r.records, *a)
	stored := *a
	return &stored, true, nil
}

func (r *MemoryAttendanceRepository) FindByEmployee(_ context.Context, employeeID string, limit int64) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Attendance, 0)
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) FindByDate(_ context.Context, date string, limit int64) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Attendance, 0)
	for _, rec := range r.records {
		if rec.Date == date {
			out = append(out, rec)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) CountByDateStatus(_ context.Context, date string, status models.AttendanceStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rec := range r.records {
		if rec.Date == date && rec.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *MemoryAttendanceRepository) FindRecentlyMarked(_ context.Context, limit int64) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Attendance, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].MarkedAt.After(out[j].MarkedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) DeleteByEmployee(_ context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	var deleted int64
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}

type MemoryNotificationRepository struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

func (r *MemoryNotificationRepository) Insert(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = primitive.NewObjectID()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *MemoryNotificationRepository) FindRecent(_ context.Context, limit int64) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryNotificationRepository) CountUnread(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, notif := range r.notifications {
		if !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *MemoryNotificationRepository) MarkRead(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID.Hex() == id {
			r.notifications[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryNotificationRepository) MarkAllRead(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		r.notifications[i].IsRead = true
	}
	return nil
}
