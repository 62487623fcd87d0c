package dto

import "time"

// CreatePostDTO 发帖
type CreatePostDTO struct {
	PostType        string  `json:"post_type" validate:"required,oneof=original reposting quote"`
	Text            *string `json:"text,omitempty" validate:"omitempty,max=777"`
	ReferencePostID *int64  `json:"reference_post_id,omitempty" validate:"omitempty,gt=0"`
}

// PostDTO 帖子
type PostDTO struct {
	ID              int64     `json:"id"`
	ReferencePostID *int64    `json:"reference_post_id"`
	PostType        string    `json:"post_type"`
	Text            *string   `json:"text"`
	PublishedBy     int64     `json:"published_by"`
	PublishedAt     time.Time `json:"published_at"`

	Publisher     *UserDTO `json:"publisher,omitempty"`
	ReferencePost *PostDTO `json:"reference_post,omitempty"`
}

// HateoasDTO 资源链接，href 为 null 表示不存在
type HateoasDTO struct {
	Rel  string  `json:"rel"`
	Href *string `json:"href"`
}

// PostItemDTO 列表中的单条帖子
type PostItemDTO struct {
	Post          *PostDTO     `json:"post"`
	FollowingUser bool         `json:"following_user"`
	Links         []HateoasDTO `json:"links"`
}

// PostPageDTO 帖子分页
type PostPageDTO struct {
	Posts      []*PostItemDTO `json:"posts"`
	PageNumber int            `json:"page_number"`
	TotalPages int            `json:"total_pages"`
	TotalPosts int64          `json:"total_posts"`
	Links      []HateoasDTO   `json:"links"`
}

// PageQueryDTO 分页参数
type PageQueryDTO struct {
	Page int `form:"page,default=1"`
}

// FeedQueryDTO feed 参数
type FeedQueryDTO struct {
	Page          int  `form:"page,default=1"`
	OnlyFollowing bool `form:"only_following"`
}
