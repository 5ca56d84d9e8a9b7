package repositories

import (
	"context"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	WithTx(tx *gorm.DB) LikeRepository
	CreateLike(ctx context.Context, like *models.Like) (bool, error)
	DeleteLike(ctx context.Context, userID, postID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &PostgresLikeRepository{db: tx}
}

// CreateLike inserts like unless the (user, post) pair already exists.
// It reports whether a row was actually written.
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLike removes the (user, post) like and reports whether one existed
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
