package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hrms-lite/internal/models"
	"hrms-lite/internal/repository"
)

// failingAttendanceRepo breaks the cascade step of an employee delete.
type failingAttendanceRepo struct {
	*repository.MemoryAttendanceRepository
}

func (r *failingAttendanceRepo) DeleteByEmployee(context.Context, string) (int64, error) {
	return 0, fmt.Errorf("%w: delete attendance by employee: connection reset", models.ErrStoreUnavailable)
}

// failingNotifier rejects every notification.
type failingNotifier struct{}

func (failingNotifier) Create(context.Context, string, string, models.NotificationType) error {
	return fmt.Errorf("%w: insert notification: timeout", models.ErrStoreUnavailable)
}

type employeeFixture struct {
	svc           *EmployeeService
	attendance    *repository.MemoryAttendanceRepository
	notifications *repository.MemoryNotificationRepository
}

func newEmployeeFixture() employeeFixture {
	employees := repository.NewMemoryEmployeeRepository()
	attendance := repository.NewMemoryAttendanceRepository()
	notifications := repository.NewMemoryNotificationRepository()
	notifier := NewNotificationService(notifications)
	return employeeFixture{
		svc:           NewEmployeeService(employees, attendance, notifier),
		attendance:    attendance,
		notifications: notifications,
	}
}

func validEmployee() models.CreateEmployeeInput {
	return models.CreateEmployeeInput{
		EmployeeID: "E001",
		FullName:   "John Doe",
		Email:      "john@example.com",
		Department: "Engineering",
	}
}

func TestCreateAndGetEmployee(t *testing.T) {
	fx := newEmployeeFixture()
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, validEmployee())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID.IsZero() {
		t.Error("Create() did not assign a storage id")
	}

	got, err := fx.svc.Get(ctx, "E001")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.EmployeeID != "E001" || got.FullName != "John Doe" ||
		got.Email != "john@example.com" || got.Department != "Engineering" {
		t.Errorf("Get() = %+v, want the created record", got)
	}

	notifications, _ := fx.notifications.FindRecent(ctx, 10)
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications after create, want 1", len(notifications))
	}
	if notifications[0].Type != models.NotifySuccess {
		t.Errorf("onboarding notification type = %q, want %q", notifications[0].Type, models.NotifySuccess)
	}
	if notifications[0].IsRead {
		t.Error("new notification should be unread")
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.CreateEmployeeInput
	}{
		{
			name:  "missing employee_id",
			input: models.CreateEmployeeInput{FullName: "John Doe", Email: "john@example.com"},
		},
		{
			name:  "missing full_name",
			input: models.CreateEmployeeInput{EmployeeID: "E001", Email: "john@example.com"},
		},
		{
			name:  "malformed email",
			input: models.CreateEmployeeInput{EmployeeID: "E001", FullName: "John Doe", Email: "not-an-email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newEmployeeFixture()
			_, err := fx.svc.Create(context.Background(), tt.input)
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateEmployeeDuplicate(t *testing.T) {
	fx := newEmployeeFixture()
	ctx := context.Background()

	if _, err := fx.svc.Create(ctx, validEmployee()); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	dup := validEmployee()
	dup.FullName = "Impostor"
	if _, err := fx.svc.Create(ctx, dup); !errors.Is(err, models.ErrConflict) {
		t.Fatalf("duplicate Create() error = %v, want ErrConflict", err)
	}

	got, err := fx.svc.Get(ctx, "E001")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.FullName != "John Doe" {
		t.Errorf("existing record altered by failed create: full_name = %q", got.FullName)
	}
}

func TestUpdateEmployee(t *testing.T) {
	fx := newEmployeeFixture()
	ctx := context.Background()
	if _, err := fx.svc.Create(ctx, validEmployee()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dept := "Platform"
	updated, err := fx.svc.Update(ctx, "E001", models.UpdateEmployeeInput{Department: &dept})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Department != "Platform" {
		t.Errorf("Department = %q, want %q", updated.Department, "Platform")
	}
	if updated.FullName != "John Doe" || updated.Email != "john@example.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	if _, err := fx.svc.Update(ctx, "E001", models.UpdateEmployeeInput{}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("empty Update() error = %v, want ErrValidation", err)
	}
	bad := "nope"
	if _, err := fx.svc.Update(ctx, "E001", models.UpdateEmployeeInput{Email: &bad}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("bad email Update() error = %v, want ErrValidation", err)
	}
	if _, err := fx.svc.Update(ctx, "E999", models.UpdateEmployeeInput{Department: &dept}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("missing Update() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEmployeeCascade(t *testing.T) {
	fx := newEmployeeFixture()
	ctx := context.Background()

	first := validEmployee()
	second := models.CreateEmployeeInput{
		EmployeeID: "E002",
		FullName:   "Jane Roe",
		Email:      "jane@example.com",
		Department: "Design",
	}
	if _, err := fx.svc.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := fx.svc.Create(ctx, second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, employeeID := range []string{"E001", "E002"} {
		for _, date := range []string{"2023-10-26", "2023-10-27"} {
			_, _, err := fx.attendance.Upsert(ctx, &models.Attendance{
				EmployeeID: employeeID,
				Date:       date,
				Status:     models.StatusPresent,
				MarkedAt:   time.Now(),
			})
			if err != nil {
				t.Fatalf("seed attendance: %v", err)
			}
		}
	}

	if err := fx.svc.Delete(ctx, "E001"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := fx.svc.Get(ctx, "E001"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	gone, _ := fx.attendance.FindByEmployee(ctx, "E001", 1000)
	if len(gone) != 0 {
		t.Errorf("E001 attendance not cascaded: %d records remain", len(gone))
	}
	kept, _ := fx.attendance.FindByEmployee(ctx, "E002", 1000)
	if len(kept) != 2 {
		t.Errorf("E002 attendance touched by cascade: %d records, want 2", len(kept))
	}
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	fx := newEmployeeFixture()
	if err := fx.svc.Delete(context.Background(), "E404"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEmployeeCascadeFailure(t *testing.T) {
	employees := repository.NewMemoryEmployeeRepository()
	attendance := &failingAttendanceRepo{repository.NewMemoryAttendanceRepository()}
	notifications := repository.NewMemoryNotificationRepository()
	svc := NewEmployeeService(employees, attendance, NewNotificationService(notifications))
	ctx := context.Background()

	if _, err := svc.Create(ctx, validEmployee()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, _, err := attendance.MemoryAttendanceRepository.Upsert(ctx, &models.Attendance{
		EmployeeID: "E001",
		Date:       "2023-10-27",
		Status:     models.StatusPresent,
		MarkedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	if err := svc.Delete(ctx, "E001"); !errors.Is(err, models.ErrStoreUnavailable) {
		t.Fatalf("Delete() error = %v, want ErrStoreUnavailable", err)
	}

	// The employee document must survive a failed cascade so the
	// delete can be retried, and no attendance row may be orphaned.
	if _, err := svc.Get(ctx, "E001"); err != nil {
		t.Errorf("Get() after failed cascade error = %v, want employee intact", err)
	}
	records, _ := attendance.MemoryAttendanceRepository.FindByEmployee(ctx, "E001", 1000)
	if len(records) != 1 {
		t.Errorf("attendance records = %d, want 1 untouched", len(records))
	}
}

func TestCreateEmployeeNotifierFailure(t *testing.T) {
	employees := repository.NewMemoryEmployeeRepository()
	attendance := repository.NewMemoryAttendanceRepository()
	svc := NewEmployeeService(employees, attendance, failingNotifier{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validEmployee())
	if err != nil {
		t.Fatalf("Create() error = %v, want success despite notifier failure", err)
	}
	if created.EmployeeID != "E001" {
		t.Errorf("created = %+v", created)
	}
	if _, err := svc.Get(ctx, "E001"); err != nil {
		t.Errorf("Get() error = %v, want record persisted", err)
	}
}
