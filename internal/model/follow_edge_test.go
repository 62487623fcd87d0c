package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollowEdge(t *testing.T) {
	edge, err := NewFollowEdge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), edge.FollowerID)
	assert.Equal(t, int64(2), edge.FolloweeID)

	_, err = NewFollowEdge(7, 7)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowEdgeBeforeCreate(t *testing.T) {
	assert.ErrorIs(t, (&FollowEdge{FolloweeID: 3, FollowerID: 3}).BeforeCreate(nil), ErrSelfFollow)
	assert.NoError(t, (&FollowEdge{FolloweeID: 3, FollowerID: 4}).BeforeCreate(nil))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice"))
	assert.True(t, IsValidUsername("Bob1234567890x"))
	assert.False(t, IsValidUsername(""))
	assert.False(t, IsValidUsername("Bob1234567890xy"))
	assert.False(t, IsValidUsername("bob_smith"))
	assert.False(t, IsValidUsername("bob smith"))
}

func TestCalendarDay(t *testing.T) {
	year, day := CalendarDay(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, 366, day)
}
