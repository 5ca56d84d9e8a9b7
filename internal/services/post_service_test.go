package services

import (
	"testing"
	"time"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeed_NoFollowsReturnsOwnPosts(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")
	bob := testutil.CreateUser(t, e.db, "bob")
	now := time.Now()
	p1 := testutil.CreatePost(t, e.db, alice.ID, "a1.jpg", now.Add(-2*time.Hour))
	p2 := testutil.CreatePost(t, e.db, alice.ID, "a2.jpg", now.Add(-time.Hour))
	testutil.CreatePost(t, e.db, bob.ID, "b1.jpg", now)

	feed, err := e.posts.GetFeed(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, p2.ID, feed[0].ID)
	assert.Equal(t, p1.ID, feed[1].ID)
	for _, p := range feed {
		assert.Equal(t, alice.ID, p.UserID)
		assert.Equal(t, "alice", p.Username)
		assert.NotNil(t, p.Likes)
	}
}

func TestGetFeed_IncludesFollowedWithCountsAndLikers(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")
	bob := testutil.CreateUser(t, e.db, "bob")
	carol := testutil.CreateUser(t, e.db, "carol")
	testutil.Follow(t, e.db, alice.ID, bob.ID)

	now := time.Now()
	own := testutil.CreatePost(t, e.db, alice.ID, "a.jpg", now.Add(-time.Hour))
	followed := testutil.CreatePost(t, e.db, bob.ID, "b.jpg", now)
	testutil.CreatePost(t, e.db, carol.ID, "c.jpg", now)

	_, err := e.engagement.ToggleLike(ctx, alice.ID, followed.ID)
	require.NoError(t, err)
	_, err = e.engagement.ToggleLike(ctx, carol.ID, followed.ID)
	require.NoError(t, err)
	_, err = e.engagement.AddComment(ctx, models.CreateCommentRequest{UserID: carol.ID, PostID: followed.ID, Text: "hi"})
	require.NoError(t, err)

	feed, err := e.posts.GetFeed(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, followed.ID, feed[0].ID)
	assert.Equal(t, "bob", feed[0].Username)
	assert.EqualValues(t, 2, feed[0].LikesCount)
	assert.EqualValues(t, 1, feed[0].CommentsCount)
	assert.ElementsMatch(t, []uint{alice.ID, carol.ID}, feed[0].Likes)

	assert.Equal(t, own.ID, feed[1].ID)
	assert.Zero(t, feed[1].LikesCount)
	assert.Equal(t, []uint{}, feed[1].Likes)
}

func TestGetFeed_Limit(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")
	base := time.Now()
	for i := 0; i < FeedLimit+5; i++ {
		testutil.CreatePost(t, e.db, alice.ID, "p.jpg", base.Add(time.Duration(i)*time.Second))
	}

	feed, err := e.posts.GetFeed(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, feed, FeedLimit)
}

func TestGetExplore(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")
	bob := testutil.CreateUser(t, e.db, "bob")
	base := time.Now()
	for i := 0; i < ExploreLimit; i++ {
		testutil.CreatePost(t, e.db, alice.ID, "a.jpg", base.Add(time.Duration(i)*time.Second))
	}
	newest := testutil.CreatePost(t, e.db, bob.ID, "b.jpg", base.Add(time.Hour))

	posts, err := e.posts.GetExplore(ctx)
	require.NoError(t, err)
	require.Len(t, posts, ExploreLimit)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, "bob", posts[0].Username)
}

func TestCreatePost(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")

	p, err := e.posts.CreatePost(ctx, models.CreatePostRequest{UserID: alice.ID, MediaURL: " https://cdn/x.jpg ", Caption: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "https://cdn/x.jpg", p.MediaURL)
	assert.Equal(t, "hello", p.Caption)

	_, err = e.posts.CreatePost(ctx, models.CreatePostRequest{UserID: alice.ID})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = e.posts.CreatePost(ctx, models.CreatePostRequest{UserID: 999, MediaURL: "x.jpg"})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetProfile(t *testing.T) {
	e := newEnv(t)
	alice := testutil.CreateUser(t, e.db, "alice")
	bob := testutil.CreateUser(t, e.db, "bob")
	carol := testutil.CreateUser(t, e.db, "carol")
	testutil.Follow(t, e.db, bob.ID, alice.ID)
	testutil.Follow(t, e.db, carol.ID, alice.ID)
	testutil.Follow(t, e.db, alice.ID, bob.ID)

	now := time.Now()
	older := testutil.CreatePost(t, e.db, alice.ID, "1.jpg", now.Add(-time.Hour))
	newer := testutil.CreatePost(t, e.db, alice.ID, "2.jpg", now)
	testutil.CreatePost(t, e.db, bob.ID, "b.jpg", now)
	_, err := e.engagement.ToggleLike(ctx, bob.ID, older.ID)
	require.NoError(t, err)

	p, err := e.posts.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Profile.Username)
	assert.Equal(t, 2, p.PostsCount)
	require.Len(t, p.Posts, 2)
	assert.Equal(t, newer.ID, p.Posts[0].ID)
	assert.EqualValues(t, 1, p.Posts[1].LikesCount)
	assert.EqualValues(t, 2, p.FollowersCount)
	assert.EqualValues(t, 1, p.FollowingCount)

	_, err = e.posts.GetProfile(ctx, 999)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "User not found", err.Error())
}
