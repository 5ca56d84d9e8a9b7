package models

import "time"

// MaxCaptionLength bounds post captions, in characters.
const MaxCaptionLength = 2200

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	MediaURL  string    `gorm:"not null"`
	Caption   string
	CreatedAt time.Time `gorm:"index"`
}

// PostView is a post with its author and denormalized engagement counts.
type PostView struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	MediaURL       string `json:"media_url"`
	Caption        string `json:"caption"`
	CreatedAt      int64  `json:"created_at"`
	Username       string `json:"username,omitempty"`
	UserProfilePic string `json:"user_profile_pic,omitempty"`
	LikesCount     int64  `json:"likes_count"`
	CommentsCount  int64  `json:"comments_count"`
}

// FeedPost additionally lists every user who liked the post.
type FeedPost struct {
	PostView
	Likes []uint `json:"likes"`
}

func (p *Post) ToView() PostView {
	return PostView{
		ID:        p.ID,
		UserID:    p.UserID,
		MediaURL:  p.MediaURL,
		Caption:   p.Caption,
		CreatedAt: p.CreatedAt.Unix(),
	}
}

type CreatePostRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	MediaURL string `json:"media_url" validate:"required,max=2048" errmsg:"Media URL is too long"`
	Caption  string `json:"caption"`
}
