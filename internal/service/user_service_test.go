package service

import (
	"context"
	"testing"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	email := "alice@example.com"
	user, err := env.users.Register(ctx, &dto.CreateUserDTO{Username: "alice", Email: &email})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, email, *user.Email)

	_, err = env.users.Register(ctx, &dto.CreateUserDTO{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = env.users.Register(ctx, &dto.CreateUserDTO{Username: "not valid!"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	assert.Equal(t, dto.UserStatisticsDTO{}, env.view(t, "alice"))
}

func TestGetUserViewCachesProfile(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegister(t, "alice")

	view, err := env.users.GetUserView(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", view.User.Username)
	assert.True(t, env.mr.Exists(consts.UserProfileKey+"alice"))

	_, err = env.users.GetUserView(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.False(t, env.mr.Exists(consts.UserProfileKey+"ghost"))
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegister(t, "alice")
	env.mustRegister(t, "bob")

	page, err := env.users.ListUsers(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, int64(2), page.TotalUsers)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Users, 2)

	page, err = env.users.ListUsers(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestIssueToken(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustRegister(t, "alice")

	token, err := env.users.IssueToken(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := security.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, err = env.users.IssueToken(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
