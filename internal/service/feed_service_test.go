package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func largeQuota(cfg *config.FeedConfig) {
	cfg.UserMaxPostsPerDay = 100
}

func linkHref(links []dto.HateoasDTO, rel string) *string {
	for _, link := range links {
		if link.Rel == rel {
			return link.Href
		}
	}
	return nil
}

func TestGetPostsByUsernamePagination(t *testing.T) {
	env := newTestEnv(t, largeQuota, func(cfg *config.FeedConfig) { cfg.MaxPostsPerPage = 10 })
	ctx := context.Background()
	env.mustRegister(t, "alice")
	for i := 0; i < 15; i++ {
		env.mustPost(t, "alice", fmt.Sprintf("post %d", i))
	}

	first, err := env.feeds.GetPostsByUsername(ctx, 1, "alice", 0)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Len(t, first.Posts, 10)
	assert.Equal(t, 1, first.PageNumber)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, int64(15), first.TotalPosts)
	assert.Nil(t, linkHref(first.Links, "previous_page"))
	require.NotNil(t, linkHref(first.Links, "next_page"))
	assert.Equal(t, "http://localhost:8000/api/posts/alice?page=2", *linkHref(first.Links, "next_page"))
	for i := 1; i < len(first.Posts); i++ {
		assert.Greater(t, first.Posts[i-1].Post.ID, first.Posts[i].Post.ID)
	}

	second, err := env.feeds.GetPostsByUsername(ctx, 2, "alice", 0)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Len(t, second.Posts, 5)
	require.NotNil(t, linkHref(second.Links, "previous_page"))
	assert.Equal(t, "http://localhost:8000/api/posts/alice?page=1", *linkHref(second.Links, "previous_page"))
	assert.Nil(t, linkHref(second.Links, "next_page"))

	third, err := env.feeds.GetPostsByUsername(ctx, 3, "alice", 0)
	require.NoError(t, err)
	assert.Nil(t, third)

	_, err = env.feeds.GetPostsByUsername(ctx, 1, "ghost", 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHugePageIsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustRegister(t, "alice")
	for i := 0; i < 3; i++ {
		env.mustPost(t, "alice", fmt.Sprintf("post %d", i))
	}

	for _, page := range []int{0, -1, 1844674407370955163, math.MaxInt} {
		posts, err := env.feeds.GetPostsByUsername(ctx, page, "alice", 0)
		require.NoError(t, err)
		assert.Nil(t, posts, "page %d", page)

		feed, err := env.feeds.GetPostsForFeed(ctx, page, "alice", false)
		require.NoError(t, err)
		assert.Nil(t, feed, "page %d", page)
	}
}

func TestGetPostsByUsernameEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegister(t, "alice")

	page, err := env.feeds.GetPostsByUsername(context.Background(), 1, "alice", 0)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestFeedFollowingScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustRegister(t, "usera")
	bob := env.mustRegister(t, "userb")
	env.mustRegister(t, "userc")
	require.NoError(t, env.follows.Follow(ctx, "usera", "userb"))

	for i := 0; i < 3; i++ {
		env.mustPost(t, "userb", fmt.Sprintf("b %d", i))
	}
	for i := 0; i < 2; i++ {
		env.mustPost(t, "userc", fmt.Sprintf("c %d", i))
	}

	following, err := env.feeds.GetPostsForFeed(ctx, 1, "usera", true)
	require.NoError(t, err)
	require.NotNil(t, following)
	assert.Equal(t, int64(3), following.TotalPosts)
	require.Len(t, following.Posts, 3)
	for _, item := range following.Posts {
		assert.Equal(t, bob.ID, item.Post.PublishedBy)
		assert.True(t, item.FollowingUser)
	}

	all, err := env.feeds.GetPostsForFeed(ctx, 1, "usera", false)
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Equal(t, int64(5), all.TotalPosts)
	require.Len(t, all.Posts, 5)
	for _, item := range all.Posts {
		assert.Equal(t, item.Post.PublishedBy == bob.ID, item.FollowingUser)
	}

	none, err := env.feeds.GetPostsForFeed(ctx, 1, "userc", true)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = env.feeds.GetPostsForFeed(ctx, 1, "ghost", false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFeedLinksKeepOnlyFollowing(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.FeedConfig) { cfg.MaxFeedPostsPerPage = 2 })
	ctx := context.Background()
	env.mustRegister(t, "alice")
	env.mustRegister(t, "bob")
	require.NoError(t, env.follows.Follow(ctx, "alice", "bob"))
	for i := 0; i < 3; i++ {
		env.mustPost(t, "bob", fmt.Sprintf("b %d", i))
	}

	first, err := env.feeds.GetPostsForFeed(ctx, 1, "alice", true)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 2, first.TotalPages)
	require.NotNil(t, linkHref(first.Links, "next_page"))
	assert.Equal(t, "http://localhost:8000/api/feeds?page=2&only_following=true", *linkHref(first.Links, "next_page"))

	second, err := env.feeds.GetPostsForFeed(ctx, 2, "alice", false)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.NotNil(t, linkHref(second.Links, "previous_page"))
	assert.Equal(t, "http://localhost:8000/api/feeds?page=1", *linkHref(second.Links, "previous_page"))
	assert.Nil(t, linkHref(second.Links, "next_page"))
}
