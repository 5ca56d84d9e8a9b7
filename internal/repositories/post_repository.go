package repositories

import (
	"context"
	"time"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetFeed(ctx context.Context, userID uint, limit int) ([]models.FeedPost, error)
	GetExplore(ctx context.Context, limit int) ([]models.PostView, error)
	GetPostsByUserID(ctx context.Context, userID uint) ([]models.PostView, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

const countColumns = "(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count, " +
	"(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count"

type postRow struct {
	ID             uint
	UserID         uint
	MediaURL       string
	Caption        string
	CreatedAt      time.Time
	Username       string
	UserProfilePic string
	LikesCount     int64
	CommentsCount  int64
}

func (r postRow) view() models.PostView {
	return models.PostView{
		ID:             r.ID,
		UserID:         r.UserID,
		MediaURL:       r.MediaURL,
		Caption:        r.Caption,
		CreatedAt:      r.CreatedAt.Unix(),
		Username:       r.Username,
		UserProfilePic: r.UserProfilePic,
		LikesCount:     r.LikesCount,
		CommentsCount:  r.CommentsCount,
	}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *PostgresPostRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("posts AS p").
		Select("p.id, p.user_id, p.media_url, p.caption, p.created_at, " +
			"u.username, u.profile_pic AS user_profile_pic, " + countColumns).
		Joins("JOIN users u ON u.id = p.user_id")
}

// GetFeed returns the newest posts written by userID or by anyone userID follows,
// each carrying the ids of every user who liked it.
func (r *PostgresPostRepository) GetFeed(ctx context.Context, userID uint, limit int) ([]models.FeedPost, error) {
	following := r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID)

	var rows []postRow
	err := r.withAuthor(ctx).
		Where("p.user_id = ? OR p.user_id IN (?)", userID, following).
		Order("p.created_at DESC, p.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	likers, err := r.likersByPost(ctx, ids)
	if err != nil {
		return nil, err
	}

	posts := make([]models.FeedPost, len(rows))
	for i, row := range rows {
		l := likers[row.ID]
		if l == nil {
			l = []uint{}
		}
		posts[i] = models.FeedPost{PostView: row.view(), Likes: l}
	}
	return posts, nil
}

func (r *PostgresPostRepository) likersByPost(ctx context.Context, postIDs []uint) (map[uint][]uint, error) {
	out := make(map[uint][]uint, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Select("post_id", "user_id").
		Where("post_id IN ?", postIDs).
		Order("id").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.PostID] = append(out[l.PostID], l.UserID)
	}
	return out, nil
}

// GetExplore returns the most recent posts from everyone
func (r *PostgresPostRepository) GetExplore(ctx context.Context, limit int) ([]models.PostView, error) {
	var rows []postRow
	err := r.withAuthor(ctx).
		Order("p.created_at DESC, p.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return views(rows), nil
}

// GetPostsByUserID retrieves every post by userID, newest first
func (r *PostgresPostRepository) GetPostsByUserID(ctx context.Context, userID uint) ([]models.PostView, error) {
	var rows []postRow
	err := r.db.WithContext(ctx).Table("posts AS p").
		Select("p.id, p.user_id, p.media_url, p.caption, p.created_at, "+countColumns).
		Where("p.user_id = ?", userID).
		Order("p.created_at DESC, p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return views(rows), nil
}

func views(rows []postRow) []models.PostView {
	out := make([]models.PostView, len(rows))
	for i, row := range rows {
		out[i] = row.view()
	}
	return out
}
