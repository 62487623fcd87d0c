package dto

import "time"

// CreateUserDTO 注册
type CreateUserDTO struct {
	Username    string  `json:"username" validate:"required,max=14,alphanum"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=50"`
}

// UserDTO 用户
type UserDTO struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       *string   `json:"email"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserStatisticsDTO 用户计数
type UserStatisticsDTO struct {
	FolloweeCounter int64 `json:"followee_counter"`
	FollowerCounter int64 `json:"follower_counter"`
	PostsCounter    int64 `json:"posts_counter"`
}

// UserViewDTO 用户主页
type UserViewDTO struct {
	User       *UserDTO          `json:"user"`
	Statistics UserStatisticsDTO `json:"statistics"`
}

// UserPageDTO 用户分页
type UserPageDTO struct {
	Users      []*UserDTO `json:"users"`
	PageNumber int        `json:"page_number"`
	TotalPages int        `json:"total_pages"`
	TotalUsers int64      `json:"total_users"`
}

// FollowDTO 关注 / 取消关注
type FollowDTO struct {
	Followee string `json:"followee" validate:"required,max=14,alphanum"`
}

// TokenRequestDTO 签发 token
type TokenRequestDTO struct {
	Username string `json:"username" validate:"required,max=14,alphanum"`
}

// TokenDTO 签发结果
type TokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
