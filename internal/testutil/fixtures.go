package testutil

import (
	"testing"
	"time"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// CreateUser inserts a user directly; the password column holds a placeholder.
func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreatePost inserts a post by userID created at the given instant.
func CreatePost(t testing.TB, db *gorm.DB, userID uint, media string, at time.Time) *models.Post {
	t.Helper()
	p := &models.Post{UserID: userID, MediaURL: media, CreatedAt: at}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

func Follow(t testing.TB, db *gorm.DB, followerID, followingID uint) {
	t.Helper()
	if err := db.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error; err != nil {
		t.Fatalf("create follow: %v", err)
	}
}
