package models

import "time"

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
)

// Notification is addressed to UserID and caused by FromUserID. PostID is nil for follows.
type Notification struct {
	ID         uint             `gorm:"primaryKey"`
	UserID     uint             `gorm:"index;not null"`
	FromUserID uint             `gorm:"not null"`
	Type       NotificationType `gorm:"size:20;not null"`
	PostID     *uint
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index"`
}

type NotificationView struct {
	ID             uint             `json:"id"`
	UserID         uint             `json:"user_id"`
	FromUserID     uint             `json:"from_user_id"`
	Type           NotificationType `json:"type"`
	PostID         *uint            `json:"post_id"`
	Read           bool             `json:"read"`
	CreatedAt      int64            `json:"created_at"`
	FromUsername   string           `json:"from_username"`
	FromProfilePic string           `json:"from_profile_pic"`
	PostMedia      *string          `json:"post_media"`
}

type MarkReadRequest struct {
	UserID         uint  `json:"user_id"`
	NotificationID *uint `json:"notification_id"`
}
