package repositories

import (
	"context"
	"time"

	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	WithTx(tx *gorm.DB) NotificationRepository
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetByRecipientID(ctx context.Context, recipientID uint, limit int) ([]models.NotificationView, error)
	GetUnreadCount(ctx context.Context, recipientID uint) (int64, error)
	MarkAsRead(ctx context.Context, recipientID, notificationID uint) (int64, error)
	MarkAllAsRead(ctx context.Context, recipientID uint) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) WithTx(tx *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: tx}
}

func (r *postgresNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

type notificationRow struct {
	ID             uint
	UserID         uint
	FromUserID     uint
	Type           models.NotificationType
	PostID         *uint
	Read           bool
	CreatedAt      time.Time
	FromUsername   string
	FromProfilePic string
	PostMedia      *string
}

// GetByRecipientID returns the newest notifications for recipientID with the
// actor's identity and, when the notification refers to a post, its media.
func (r *postgresNotificationRepository) GetByRecipientID(ctx context.Context, recipientID uint, limit int) ([]models.NotificationView, error) {
	var rows []notificationRow
	err := r.db.WithContext(ctx).Table("notifications AS n").
		Select("n.id, n.user_id, n.from_user_id, n.type, n.post_id, n.read, n.created_at, " +
			"u.username AS from_username, u.profile_pic AS from_profile_pic, p.media_url AS post_media").
		Joins("JOIN users u ON u.id = n.from_user_id").
		Joins("LEFT JOIN posts p ON p.id = n.post_id").
		Where("n.user_id = ?", recipientID).
		Order("n.created_at DESC, n.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.NotificationView, len(rows))
	for i, row := range rows {
		out[i] = models.NotificationView{
			ID:             row.ID,
			UserID:         row.UserID,
			FromUserID:     row.FromUserID,
			Type:           row.Type,
			PostID:         row.PostID,
			Read:           row.Read,
			CreatedAt:      row.CreatedAt.Unix(),
			FromUsername:   row.FromUsername,
			FromProfilePic: row.FromProfilePic,
			PostMedia:      row.PostMedia,
		}
	}
	return out, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ? AND read = ?", recipientID, false).Count(&count).Error
	return count, err
}

// MarkAsRead flags one notification, only if it belongs to recipientID
func (r *postgresNotificationRepository) MarkAsRead(ctx context.Context, recipientID, notificationID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, recipientID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
