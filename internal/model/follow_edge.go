package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("follower and followee must be different users")

// FollowEdge follower -> followee，follower 会收到 followee 的内容
type FollowEdge struct {
	FolloweeID int64     `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`
	FollowerID int64     `gorm:"primaryKey;autoIncrement:false;index:idx_follower_id" json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FollowEdge) TableName() string {
	return "followers"
}

// NewFollowEdge 构造关注关系，禁止自己关注自己
func NewFollowEdge(followerID, followeeID int64) (*FollowEdge, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}
	return &FollowEdge{
		FolloweeID: followeeID,
		FollowerID: followerID,
	}, nil
}

func (e *FollowEdge) BeforeCreate(*gorm.DB) error {
	if e.FolloweeID == e.FollowerID {
		return ErrSelfFollow
	}
	return nil
}
