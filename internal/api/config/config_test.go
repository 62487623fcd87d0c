package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFeedConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Feed.MaxPostsPerPage)
	assert.Equal(t, 10, cfg.Feed.MaxFeedPostsPerPage)
	assert.Equal(t, int64(5), cfg.Feed.UserMaxPostsPerDay)
	assert.Equal(t, 20, cfg.Feed.FollowPageSize)
	assert.Equal(t, "mysql", cfg.DB.Driver)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TWIJOURNAL_FEED_MAX_FEED_POSTS_PER_PAGE", "25")
	t.Setenv("TWIJOURNAL_DATABASE_DRIVER", "sqlite")

	require.NoError(t, LoadConfig())
	assert.Equal(t, 25, Cfg.Feed.MaxFeedPostsPerPage)
	assert.Equal(t, "sqlite", Cfg.DB.Driver)
	assert.Equal(t, 5, Cfg.Feed.MaxPostsPerPage)
}
