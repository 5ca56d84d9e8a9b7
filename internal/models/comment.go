package models

import "time"

// MaxCommentLength is the number of characters kept from a comment's text.
const MaxCommentLength = 500

type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	PostID    uint      `gorm:"index;not null"`
	Text      string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"index"`
}

type CommentView struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	PostID         uint   `json:"post_id"`
	Text           string `json:"text"`
	CreatedAt      int64  `json:"created_at"`
	Username       string `json:"username,omitempty"`
	UserProfilePic string `json:"user_profile_pic,omitempty"`
}

func (c *Comment) ToView() CommentView {
	return CommentView{
		ID:        c.ID,
		UserID:    c.UserID,
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Unix(),
	}
}

type CreateCommentRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	PostID uint   `json:"post_id" validate:"required"`
	Text   string `json:"text"`
}
