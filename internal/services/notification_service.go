package services

import (
	"context"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/repositories"
)

const NotificationsLimit = 50

type NotificationList struct {
	Notifications []models.NotificationView `json:"notifications"`
	UnreadCount   int64                     `json:"unread_count"`
}

type NotificationService struct {
	notifications repositories.NotificationRepository
}

func NewNotificationService(notifications repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uint) (*NotificationList, error) {
	list, err := s.notifications.GetByRecipientID(ctx, userID, NotificationsLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to load notifications", err)
	}
	unread, err := s.notifications.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load notifications", err)
	}
	return &NotificationList{Notifications: list, UnreadCount: unread}, nil
}

// MarkRead marks one of userID's notifications read, or all of them when
// notificationID is nil. Ids owned by someone else are silently ignored.
func (s *NotificationService) MarkRead(ctx context.Context, userID uint, notificationID *uint) error {
	var err error
	if notificationID != nil && *notificationID != 0 {
		_, err = s.notifications.MarkAsRead(ctx, userID, *notificationID)
	} else {
		_, err = s.notifications.MarkAllAsRead(ctx, userID)
	}
	if err != nil {
		return apperrors.Internal("Failed to mark as read", err)
	}
	return nil
}
