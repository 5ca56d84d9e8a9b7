package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"size:30;uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"` // bcrypt hash, or a legacy SHA-256 hex digest
	Bio        string    `json:"bio"`
	ProfilePic string    `json:"profile_pic"`
	CreatedAt  time.Time `json:"-"`
}

// UserPublic is the client-facing shape of a user; it never carries the password hash.
type UserPublic struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profile_pic"`
	CreatedAt  int64  `json:"created_at"`
}

func (u *User) ToPublic() UserPublic {
	return UserPublic{
		ID:         u.ID,
		Username:   u.Username,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt.Unix(),
	}
}

// UserSearchResult is a user as seen by someone searching for them.
type UserSearchResult struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Bio         string `json:"bio"`
	ProfilePic  string `json:"profile_pic"`
	IsFollowing bool   `json:"is_following"`
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30" errmsg:"Username must be 3-30 characters"`
	Password string `json:"password" validate:"required,min=6" errmsg:"Password must be at least 6 characters"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
