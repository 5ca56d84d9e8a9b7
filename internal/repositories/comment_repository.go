package repositories

import (
	"context"
	"time"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	WithTx(tx *gorm.DB) CommentRepository
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPostID(ctx context.Context, postID uint) ([]models.CommentView, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &PostgresCommentRepository{db: tx}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

type commentRow struct {
	ID             uint
	UserID         uint
	PostID         uint
	Text           string
	CreatedAt      time.Time
	Username       string
	UserProfilePic string
}

// GetCommentsByPostID returns a post's comments oldest first, with commenter identity
func (r *PostgresCommentRepository) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.CommentView, error) {
	var rows []commentRow
	err := r.db.WithContext(ctx).Table("comments AS c").
		Select("c.id, c.user_id, c.post_id, c.text, c.created_at, u.username, u.profile_pic AS user_profile_pic").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.post_id = ?", postID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]models.CommentView, len(rows))
	for i, row := range rows {
		comments[i] = models.CommentView{
			ID:             row.ID,
			UserID:         row.UserID,
			PostID:         row.PostID,
			Text:           row.Text,
			CreatedAt:      row.CreatedAt.Unix(),
			Username:       row.Username,
			UserProfilePic: row.UserProfilePic,
		}
	}
	return comments, nil
}
