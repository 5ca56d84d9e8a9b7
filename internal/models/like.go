package models

import "time"

// Like is unique per (user, post); absence means not liked.
type Like struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time
}

type ToggleLikeRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	PostID uint `json:"post_id" validate:"required"`
}
