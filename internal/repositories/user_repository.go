package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
	SearchUsers(ctx context.Context, query string, viewerID uint, limit int) ([]models.UserSearchResult, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) WithTx(tx *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: tx}
}

// CreateUser inserts user; a taken username yields ErrDuplicate
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByUsername is an exact, case-sensitive lookup
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hash).Error
}

// SearchUsers does a case-insensitive substring match on username. viewerID,
// when non-zero, is excluded from the results and drives is_following.
func (r *PostgresUserRepository) SearchUsers(ctx context.Context, query string, viewerID uint, limit int) ([]models.UserSearchResult, error) {
	pattern := "%" + escapeLike(query) + "%"
	q := r.db.WithContext(ctx).Table("users AS u").
		Select("u.id, u.username, u.bio, u.profile_pic, "+
			"EXISTS(SELECT 1 FROM follows f WHERE f.follower_id = ? AND f.following_id = u.id) AS is_following", viewerID).
		Where(`LOWER(u.username) LIKE LOWER(?) ESCAPE '\'`, pattern)
	if viewerID != 0 {
		q = q.Where("u.id <> ?", viewerID)
	}

	users := []models.UserSearchResult{}
	if err := q.Order("u.username").Limit(limit).Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
