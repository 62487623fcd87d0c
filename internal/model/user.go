package model

import (
	"regexp"
	"time"
)

const UsernameMaxLength = 14

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type User struct {
	ID          int64   `gorm:"primaryKey"`
	Username    string  `gorm:"type:varchar(14);not null;uniqueIndex:idx_username"`
	Email       *string `gorm:"type:varchar(255)"`
	DisplayName *string `gorm:"type:varchar(50)"`
	CreatedAt   time.Time

	Statistics *UserStatistics `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// IsValidUsername 用户名最多14位，仅允许字母和数字
func IsValidUsername(username string) bool {
	return len(username) > 0 && len(username) <= UsernameMaxLength && usernamePattern.MatchString(username)
}
