package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"hrms-lite/internal/models"
	"hrms-lite/internal/repository"
)

const (
	maxListAttendance  = 1000
	recentActivitySize = 5
)

type AttendanceService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	notifier   Notifier
}

func NewAttendanceService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository, notifier Notifier) *AttendanceService {
	return &AttendanceService{
		employees:  employees,
		attendance: attendance,
		notifier:   notifier,
	}
}

// Mark records attendance for an employee on a date, replacing any
// earlier status for that day. Only the first mark of the day produces
// a notification; re-marking stays silent.
func (s *AttendanceService) Mark(ctx context.Context, in models.MarkAttendanceInput) (*models.Attendance, error) {
	if err := ValidateMarkAttendance(in); err != nil {
		return nil, err
	}
	employee, err := s.employees.FindByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	stored, inserted, err := s.attendance.Upsert(ctx, &models.Attendance{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Status:     models.AttendanceStatus(in.Status),
		MarkedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if inserted {
		if stored.Status == models.StatusAbsent {
			s.notify(ctx, "Employee Absent Alert",
				fmt.Sprintf("%s has been marked as Absent for today.", employee.FullName),
				models.NotifyWarning)
		} else {
			s.notify(ctx, "Attendance Marked",
				fmt.Sprintf("%s has been marked as Present.", employee.FullName),
				models.NotifySuccess)
		}
	}
	return stored, nil
}

func (s *AttendanceService) History(ctx context.Context, employeeID string) ([]models.Attendance, error) {
	return s.attendance.FindByEmployee(ctx, employeeID, maxListAttendance)
}

// ByDate matches the stored date string literally; callers supply the
// same YYYY-MM-DD form used at write time.
func (s *AttendanceService) ByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	return s.attendance.FindByDate(ctx, date, maxListAttendance)
}

func (s *AttendanceService) DailySummary(ctx context.Context) (*models.DailySummary, error) {
	today := time.Now().Format(models.DateLayout)
	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	present, err := s.attendance.CountByDateStatus(ctx, today, models.StatusPresent)
	if err != nil {
		return nil, err
	}
	absent, err := s.attendance.CountByDateStatus(ctx, today, models.StatusAbsent)
	if err != nil {
		return nil, err
	}
	return &models.DailySummary{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
	}, nil
}

// WeeklySummary covers the last 7 days, oldest first.
func (s *AttendanceService) WeeklySummary(ctx context.Context) ([]models.WeeklyDay, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	days := make([]models.WeeklyDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(models.DateLayout)
		present, err := s.attendance.CountByDateStatus(ctx, date, models.StatusPresent)
		if err != nil {
			return nil, err
		}
		absent, err := s.attendance.CountByDateStatus(ctx, date, models.StatusAbsent)
		if err != nil {
			return nil, err
		}
		days = append(days, models.WeeklyDay{
			Day:          day.Format("Mon"),
			Present:      percentOf(present, total),
			Absent:       percentOf(absent, total),
			Date:         date,
			PresentCount: present,
			AbsentCount:  absent,
			TotalMarked:  present + absent,
			IsHoliday:    day.Weekday() == time.Sunday,
		})
	}
	return days, nil
}

func (s *AttendanceService) RecentActivity(ctx context.Context) ([]models.ActivityItem, error) {
	recent, err := s.attendance.FindRecentlyMarked(ctx, recentActivitySize)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]models.ActivityItem, 0, len(recent))
	for _, entry := range recent {
		name := "Unknown"
		employee, err := s.employees.FindByEmployeeID(ctx, entry.EmployeeID)
		if err == nil {
			name = employee.FullName
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		items = append(items, models.ActivityItem{
			User:    name,
			Action:  fmt.Sprintf("marked %s", entry.Status),
			Time:    timeAgo(now, entry.MarkedAt),
			Initial: initial(name),
			Status:  entry.Status,
		})
	}
	return items, nil
}

func (s *AttendanceService) notify(ctx context.Context, title, message string, kind models.NotificationType) {
	if err := s.notifier.Create(ctx, title, message, kind); err != nil {
		log.Printf("attendance notification failed: %v", err)
	}
}

// percentOf rounds count/total to the nearest whole percent, 0 when
// total is zero.
func percentOf(count, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// timeAgo renders minutes under an hour, hours under a day, days after.
func timeAgo(now, marked time.Time) string {
	diff := now.Sub(marked)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%d mins ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
