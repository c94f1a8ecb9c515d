package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hrms-lite/internal/models"
	"hrms-lite/internal/repository"
)

const maxListEmployees = 1000

type EmployeeService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	notifier   Notifier
}

func NewEmployeeService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository, notifier Notifier) *EmployeeService {
	return &EmployeeService{
		employees:  employees,
		attendance: attendance,
		notifier:   notifier,
	}
}

func (s *EmployeeService) Create(ctx context.Context, in models.CreateEmployeeInput) (*models.Employee, error) {
	if err := ValidateCreateEmployee(in); err != nil {
		return nil, err
	}
	// Friendly duplicate check first; the unique index on employee_id
	// is the backstop for a concurrent create racing past it.
	if _, err := s.employees.FindByEmployeeID(ctx, in.EmployeeID); err == nil {
		return nil, fmt.Errorf("employee %s: %w", in.EmployeeID, models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	stored, err := s.employees.Insert(ctx, &models.Employee{
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "New Employee Onboarded",
		fmt.Sprintf("%s has been added to the %s department.", stored.FullName, stored.Department),
		models.NotifySuccess)
	return stored, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employees.FindAll(ctx, maxListEmployees)
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.employees.FindByEmployeeID(ctx, employeeID)
}

func (s *EmployeeService) Update(ctx context.Context, employeeID string, in models.UpdateEmployeeInput) (*models.Employee, error) {
	if err := ValidateUpdateEmployee(in); err != nil {
		return nil, err
	}
	return s.employees.Update(ctx, employeeID, in)
}

// Delete removes an employee and every attendance record carrying its
// business key. Attendance goes first: a failure between the two steps
// leaves the employee record in place and the operation retryable, and
// can never orphan attendance rows.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	if _, err := s.employees.FindByEmployeeID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := s.attendance.DeleteByEmployee(ctx, employeeID); err != nil {
		return err
	}
	return s.employees.Delete(ctx, employeeID)
}

func (s *EmployeeService) notify(ctx context.Context, title, message string, kind models.NotificationType) {
	if err := s.notifier.Create(ctx, title, message, kind); err != nil {
		log.Printf("employee notification failed: %v", err)
	}
}
