// Package services implements the business rules on top of the
// repository layer.
package services

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/models"
	"hrms-lite/internal/repository"
)

const maxListNotifications = 100

// Notifier is what the employee and attendance services need from the
// notification side: fire a notification, nothing else.
type Notifier interface {
	Create(ctx context.Context, title, message string, kind models.NotificationType) error
}

type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Create(ctx context.Context, title, message string, kind models.NotificationType) error {
	if err := ValidateNotificationType(kind); err != nil {
		return err
	}
	n := &models.Notification{
		Title:     title,
		Message:   message,
		Type:      kind,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	return s.notifications.Insert(ctx, n)
}

func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.notifications.FindRecent(ctx, maxListNotifications)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.notifications.CountUnread(ctx)
}

// MarkRead flips a single notification to read. Re-marking an already
// read record succeeds; only a missing record is an error.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	matched, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notifications.MarkAllRead(ctx)
}
