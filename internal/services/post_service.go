package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/repositories"
	"github.com/anonto42/inko/backend/validators"
)

const (
	FeedLimit    = 50
	ExploreLimit = 30
)

// Profile is a user's public page.
type Profile struct {
	Profile        models.UserPublic `json:"profile"`
	Posts          []models.PostView `json:"posts"`
	PostsCount     int               `json:"posts_count"`
	FollowersCount int64             `json:"followers_count"`
	FollowingCount int64             `json:"following_count"`
}

type PostService struct {
	posts   repositories.PostRepository
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

func NewPostService(posts repositories.PostRepository, users repositories.UserRepository, follows repositories.FollowRepository) *PostService {
	return &PostService{posts: posts, users: users, follows: follows}
}

func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.PostView, error) {
	req.MediaURL = strings.TrimSpace(req.MediaURL)
	if err := validators.Struct(&req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal("Failed to create post", err)
	}

	post := &models.Post{
		UserID:   req.UserID,
		MediaURL: req.MediaURL,
		Caption:  truncate(strings.TrimSpace(req.Caption), models.MaxCaptionLength),
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, apperrors.Internal("Failed to create post", err)
	}
	v := post.ToView()
	return &v, nil
}

// GetFeed returns the user's own posts and those of everyone they follow.
func (s *PostService) GetFeed(ctx context.Context, userID uint) ([]models.FeedPost, error) {
	posts, err := s.posts.GetFeed(ctx, userID, FeedLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to load feed", err)
	}
	return posts, nil
}

func (s *PostService) GetExplore(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.posts.GetExplore(ctx, ExploreLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to load explore", err)
	}
	return posts, nil
}

func (s *PostService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	posts, err := s.posts.GetPostsByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	followers, err := s.follows.GetFollowersCount(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	following, err := s.follows.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	return &Profile{
		Profile:        user.ToPublic(),
		Posts:          posts,
		PostsCount:     len(posts),
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}
