package model

import "time"

type PostDailyCounter struct {
	ID          int64 `gorm:"primaryKey"`
	UserID      int64 `gorm:"not null;uniqueIndex:idx_user_year_day"`
	Year        int   `gorm:"not null;uniqueIndex:idx_user_year_day"`
	DayOfYear   int   `gorm:"column:year_day;not null;uniqueIndex:idx_user_year_day"`
	PostCounter int64 `gorm:"not null;default:0"`
}

func (PostDailyCounter) TableName() string {
	return "posts_statistics"
}

// CalendarDay 返回 t 所在的年份和年内第几天
func CalendarDay(t time.Time) (year int, dayOfYear int) {
	return t.Year(), t.YearDay()
}
