package services

import (
	"strings"
	"testing"
	"time"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_RoundTrip(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	fan := testutil.CreateUser(t, e.db, "fan")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())

	liked, err := e.engagement.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = e.engagement.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var likes int64
	require.NoError(t, e.db.Model(&models.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)

	// one notification for the first like; unliking writes nothing
	assert.EqualValues(t, 1, e.countNotifications(t, owner.ID))

	var n models.Notification
	require.NoError(t, e.db.Where("user_id = ?", owner.ID).First(&n).Error)
	assert.Equal(t, fan.ID, n.FromUserID)
	assert.Equal(t, models.NotificationLike, n.Type)
	require.NotNil(t, n.PostID)
	assert.Equal(t, post.ID, *n.PostID)
	assert.False(t, n.Read)
}

func TestToggleLike_OwnPostDoesNotNotify(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())

	liked, err := e.engagement.ToggleLike(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Zero(t, e.countNotifications(t, owner.ID))
}

func TestToggleLike_ExistingRowIsRemovedNotDuplicated(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	fan := testutil.CreateUser(t, e.db, "fan")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())
	require.NoError(t, e.db.Create(&models.Like{UserID: fan.ID, PostID: post.ID}).Error)

	// the unique index refuses a second row for the same pair
	err := e.db.Create(&models.Like{UserID: fan.ID, PostID: post.ID}).Error
	assert.Error(t, err)

	liked, err := e.engagement.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLike_Errors(t *testing.T) {
	e := newEnv(t)
	fan := testutil.CreateUser(t, e.db, "fan")

	_, err := e.engagement.ToggleLike(ctx, fan.ID, 999)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = e.engagement.ToggleLike(ctx, 0, 1)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddComment(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	fan := testutil.CreateUser(t, e.db, "fan")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())

	c, err := e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: fan.ID, PostID: post.ID, Text: "  nice  "})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "nice", c.Text)
	assert.NotZero(t, c.CreatedAt)
	assert.EqualValues(t, 1, e.countNotifications(t, owner.ID))

	_, err = e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: owner.ID, PostID: post.ID, Text: "thanks"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, e.countNotifications(t, owner.ID), "own comment must not notify")
}

func TestAddComment_TruncatesLongText(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())

	long := strings.Repeat("é", models.MaxCommentLength+100)
	c, err := e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: owner.ID, PostID: post.ID, Text: long})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", models.MaxCommentLength), c.Text)
}

func TestAddComment_Errors(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())

	_, err := e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: owner.ID, PostID: post.ID, Text: "   "})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, "Missing required fields", err.Error())

	_, err = e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: owner.ID, PostID: 404, Text: "hi"})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetComments_OldestFirstWithAuthor(t *testing.T) {
	e := newEnv(t)
	owner := testutil.CreateUser(t, e.db, "owner")
	fan := testutil.CreateUser(t, e.db, "fan")
	post := testutil.CreatePost(t, e.db, owner.ID, "a.jpg", time.Now())
	other := testutil.CreatePost(t, e.db, owner.ID, "b.jpg", time.Now())

	now := time.Now()
	require.NoError(t, e.db.Create(&models.Comment{UserID: fan.ID, PostID: post.ID, Text: "second", CreatedAt: now}).Error)
	require.NoError(t, e.db.Create(&models.Comment{UserID: owner.ID, PostID: post.ID, Text: "first", CreatedAt: now.Add(-time.Minute)}).Error)
	require.NoError(t, e.db.Create(&models.Comment{UserID: fan.ID, PostID: other.ID, Text: "elsewhere", CreatedAt: now}).Error)

	comments, err := e.engagement.GetComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "owner", comments[0].Username)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "fan", comments[1].Username)

	empty, err := e.engagement.GetComments(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = e.engagement.GetComments(ctx, 0)
	assert.Equal(t, "Missing post_id", err.Error())
}
