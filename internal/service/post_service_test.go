package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreatePostQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustRegister(t, "alice")

	for i := 0; i < 5; i++ {
		env.mustPost(t, "alice", fmt.Sprintf("post %d", i))
	}

	_, err := env.posts.CreatePost(ctx, "alice", &dto.CreatePostDTO{PostType: "original", Text: ptr("one more")})
	require.ErrorIs(t, err, ErrDailyQuotaExceeded)
	assert.Equal(t, "Daily user quota of 5 posts reached.", err.Error())
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, Forbidden, code)

	assert.Equal(t, int64(5), env.view(t, "alice").PostsCounter)

	env.clockTime = testNow.AddDate(0, 0, 1)
	env.mustPost(t, "alice", "tomorrow")
	assert.Equal(t, int64(6), env.view(t, "alice").PostsCounter)
}

func TestCreatePostShape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustRegister(t, "alice")
	original := env.mustPost(t, "alice", "first")

	cases := []struct {
		name string
		req  *dto.CreatePostDTO
	}{
		{"original without text", &dto.CreatePostDTO{PostType: "original"}},
		{"original with reference", &dto.CreatePostDTO{PostType: "original", Text: ptr("x"), ReferencePostID: &original.ID}},
		{"reposting with text", &dto.CreatePostDTO{PostType: "reposting", Text: ptr("x"), ReferencePostID: &original.ID}},
		{"reposting without reference", &dto.CreatePostDTO{PostType: "reposting"}},
		{"quote without text", &dto.CreatePostDTO{PostType: "quote", ReferencePostID: &original.ID}},
		{"unknown type", &dto.CreatePostDTO{PostType: "story", Text: ptr("x")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.posts.CreatePost(ctx, "alice", tc.req)
			assert.ErrorIs(t, err, ErrInvalidPostShape)
			code, _ := CodeOf(err)
			assert.Equal(t, UnprocessableEntity, code)
		})
	}
	assert.Equal(t, int64(1), env.view(t, "alice").PostsCounter)
}

func TestCreatePostMissingReferenceOrCaller(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustRegister(t, "alice")

	_, err := env.posts.CreatePost(ctx, "alice", &dto.CreatePostDTO{PostType: "reposting", ReferencePostID: ptr(int64(404))})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = env.posts.CreatePost(ctx, "ghost", &dto.CreatePostDTO{PostType: "original", Text: ptr("hi")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepostAndQuoteReferenceOriginal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")
	env.mustRegister(t, "bob")
	original := env.mustPost(t, "alice", "original words")

	repost, err := env.posts.CreatePost(ctx, "bob", &dto.CreatePostDTO{PostType: "reposting", ReferencePostID: &original.ID})
	require.NoError(t, err)
	assert.Nil(t, repost.Text)
	require.NotNil(t, repost.ReferencePost)
	assert.Equal(t, original.ID, repost.ReferencePost.ID)
	assert.Equal(t, "alice", repost.ReferencePost.Publisher.Username)
	assert.Equal(t, "bob", repost.Publisher.Username)

	quote, err := env.posts.CreatePost(ctx, "bob", &dto.CreatePostDTO{PostType: "quote", Text: ptr("so true"), ReferencePostID: &original.ID})
	require.NoError(t, err)
	assert.Equal(t, "so true", *quote.Text)
	assert.Equal(t, original.ID, *quote.ReferencePostID)

	bob, err := env.users.ResolveUser(ctx, "bob")
	require.NoError(t, err)
	require.NoError(t, env.follows.Follow(ctx, "bob", "alice"))

	item, err := env.posts.GetPost(ctx, bob.ID, repost.ID)
	require.NoError(t, err)
	assert.False(t, item.FollowingUser)
	require.Len(t, item.Links, 2)
	assert.Equal(t, consts.RelPost, item.Links[0].Rel)
	assert.Equal(t, env.cfg.PostDetailURI+strconv.FormatInt(repost.ID, 10), *item.Links[0].Href)
	assert.Equal(t, consts.RelReferencePost, item.Links[1].Rel)
	assert.Equal(t, env.cfg.PostDetailURI+strconv.FormatInt(original.ID, 10), *item.Links[1].Href)

	item, err = env.posts.GetPost(ctx, bob.ID, original.ID)
	require.NoError(t, err)
	assert.True(t, item.FollowingUser)
	assert.Len(t, item.Links, 1)
	assert.Equal(t, alice.ID, item.Post.PublishedBy)

	_, err = env.posts.GetPost(ctx, 0, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
