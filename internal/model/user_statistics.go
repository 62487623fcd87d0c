package model

type UserStatistics struct {
	ID              int64 `gorm:"primaryKey" json:"-"`
	UserID          int64 `gorm:"not null;uniqueIndex:idx_statistics_user_id" json:"-"`
	FolloweeCounter int64 `gorm:"not null;default:0" json:"followee_counter"`
	FollowerCounter int64 `gorm:"not null;default:0" json:"follower_counter"`
	PostsCounter    int64 `gorm:"not null;default:0" json:"posts_counter"`
}

func (UserStatistics) TableName() string {
	return "users_statistics"
}
