package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/metrics"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/repositories"
	"github.com/anonto42/inko/backend/validators"
	"gorm.io/gorm"
)

const SearchLimit = 20

// SocialService owns the follow graph and user search.
type SocialService struct {
	db            *gorm.DB
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	metrics       *metrics.Metrics
}

func NewSocialService(
	db *gorm.DB,
	users repositories.UserRepository,
	follows repositories.FollowRepository,
	notifications repositories.NotificationRepository,
	m *metrics.Metrics,
) *SocialService {
	return &SocialService{db: db, users: users, follows: follows, notifications: notifications, metrics: m}
}

// ToggleFollow flips the follower -> following edge with the same
// delete-else-conditional-insert scheme as likes.
func (s *SocialService) ToggleFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == 0 || followingID == 0 {
		return false, apperrors.Validation(validators.MissingFields)
	}
	if followerID == followingID {
		return false, apperrors.Validation("Cannot follow yourself")
	}

	var followed, notified bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.WithTx(tx).GetUserByID(ctx, followingID); err != nil {
			return err
		}

		removed, err := s.follows.WithTx(tx).DeleteFollow(ctx, followerID, followingID)
		if err != nil || removed {
			return err
		}
		followed = true

		created, err := s.follows.WithTx(tx).CreateFollow(ctx, &models.Follow{FollowerID: followerID, FollowingID: followingID})
		if err != nil || !created {
			return err
		}
		notified = true
		return s.notifications.WithTx(tx).CreateNotification(ctx, &models.Notification{
			UserID:     followingID,
			FromUserID: followerID,
			Type:       models.NotificationFollow,
		})
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return false, apperrors.NotFound("User not found")
	}
	if err != nil {
		return false, apperrors.Internal("Failed to follow", err)
	}

	s.metrics.FollowToggled(followed)
	if notified {
		s.metrics.NotificationCreated(string(models.NotificationFollow))
	}
	return followed, nil
}

// SearchUsers matches usernames case-insensitively. An empty query matches nobody.
func (s *SocialService) SearchUsers(ctx context.Context, query string, viewerID uint) ([]models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserSearchResult{}, nil
	}
	users, err := s.users.SearchUsers(ctx, query, viewerID, SearchLimit)
	if err != nil {
		return nil, apperrors.Internal("Search failed", err)
	}
	return users, nil
}
