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

// EngagementService handles likes and comments on posts.
type EngagementService struct {
	db            *gorm.DB
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	notifications repositories.NotificationRepository
	metrics       *metrics.Metrics
}

func NewEngagementService(
	db *gorm.DB,
	posts repositories.PostRepository,
	likes repositories.LikeRepository,
	comments repositories.CommentRepository,
	notifications repositories.NotificationRepository,
	m *metrics.Metrics,
) *EngagementService {
	return &EngagementService{
		db:            db,
		posts:         posts,
		likes:         likes,
		comments:      comments,
		notifications: notifications,
		metrics:       m,
	}
}

// ToggleLike flips userID's like on postID and returns the resulting state.
//
// The delete runs first: if it removed a row the post is now unliked. Otherwise
// the insert is conditional on the (user, post) unique index, so two identical
// concurrent requests cannot produce two rows, and only the request that actually
// wrote the like notifies the owner.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if userID == 0 || postID == 0 {
		return false, apperrors.Validation(validators.MissingFields)
	}
	post, err := s.postOwner(ctx, postID, "Failed to like post")
	if err != nil {
		return false, err
	}

	var liked, notified bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.likes.WithTx(tx).DeleteLike(ctx, userID, postID)
		if err != nil || removed {
			return err
		}
		liked = true

		created, err := s.likes.WithTx(tx).CreateLike(ctx, &models.Like{UserID: userID, PostID: postID})
		if err != nil || !created || post.UserID == userID {
			return err
		}
		notified = true
		return s.notifications.WithTx(tx).CreateNotification(ctx, &models.Notification{
			UserID:     post.UserID,
			FromUserID: userID,
			Type:       models.NotificationLike,
			PostID:     &post.ID,
		})
	})
	if err != nil {
		return false, apperrors.Internal("Failed to like post", err)
	}

	s.metrics.LikeToggled(liked)
	if notified {
		s.metrics.NotificationCreated(string(models.NotificationLike))
	}
	return liked, nil
}

// AddComment stores a comment, truncated to MaxCommentLength characters, and
// notifies the post owner unless they wrote it.
func (s *EngagementService) AddComment(ctx context.Context, req models.CreateCommentRequest) (*models.CommentView, error) {
	text := strings.TrimSpace(req.Text)
	if req.UserID == 0 || req.PostID == 0 || text == "" {
		return nil, apperrors.Validation(validators.MissingFields)
	}
	post, err := s.postOwner(ctx, req.PostID, "Failed to add comment")
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID: req.UserID,
		PostID: req.PostID,
		Text:   truncate(text, models.MaxCommentLength),
	}
	notify := post.UserID != req.UserID
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.comments.WithTx(tx).CreateComment(ctx, comment); err != nil {
			return err
		}
		if !notify {
			return nil
		}
		return s.notifications.WithTx(tx).CreateNotification(ctx, &models.Notification{
			UserID:     post.UserID,
			FromUserID: req.UserID,
			Type:       models.NotificationComment,
			PostID:     &post.ID,
		})
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to add comment", err)
	}

	s.metrics.CommentAdded()
	if notify {
		s.metrics.NotificationCreated(string(models.NotificationComment))
	}
	v := comment.ToView()
	return &v, nil
}

func (s *EngagementService) GetComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	if postID == 0 {
		return nil, apperrors.Validation("Missing post_id")
	}
	comments, err := s.comments.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, apperrors.Internal("Failed to get comments", err)
	}
	return comments, nil
}

func (s *EngagementService) postOwner(ctx context.Context, postID uint, failMsg string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Post not found")
		}
		return nil, apperrors.Internal(failMsg, err)
	}
	return post, nil
}
