package models

import "time"

// Follow is a directed edge; at most one per (follower, following) pair.
type Follow struct {
	ID          uint      `gorm:"primaryKey"`
	FollowerID  uint      `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time
}

type ToggleFollowRequest struct {
	FollowerID  uint `json:"follower_id" validate:"required"`
	FollowingID uint `json:"following_id" validate:"required"`
}
