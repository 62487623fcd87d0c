package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

const PostTextMaxLength = 777

type PostType string

const (
	PostTypeOriginal  PostType = "original"
	PostTypeReposting PostType = "reposting"
	PostTypeQuote     PostType = "quote"
)

func (t PostType) IsValid() bool {
	switch t {
	case PostTypeOriginal, PostTypeReposting, PostTypeQuote:
		return true
	}
	return false
}

var ErrInvalidPostShape = errors.New("invalid post shape")

type Post struct {
	ID              int64     `gorm:"primaryKey"`
	ReferencePostID *int64    `gorm:"index:idx_reference_post_id"`
	PostType        PostType  `gorm:"type:varchar(16);not null"`
	Text            *string   `gorm:"type:varchar(777)"`
	PublishedBy     int64     `gorm:"not null;index:idx_published_by"`
	PublishedAt     time.Time `gorm:"not null"`

	Author        *User `gorm:"foreignKey:PublishedBy;references:ID"`
	ReferencePost *Post `gorm:"foreignKey:ReferencePostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// ValidatePostShape 校验帖子类型与 text / reference_post_id 的组合
//
//	original:  text 必填，reference 禁止
//	reposting: text 禁止，reference 必填
//	quote:     text 必填，reference 必填
func ValidatePostShape(postType PostType, text *string, referencePostID *int64) error {
	if !postType.IsValid() {
		return fmt.Errorf("%w: unknown post_type %q", ErrInvalidPostShape, postType)
	}

	hasText := text != nil && strings.TrimSpace(*text) != ""
	hasReference := referencePostID != nil

	if text != nil && utf8.RuneCountInString(*text) > PostTextMaxLength {
		return fmt.Errorf("%w: text longer than %d characters", ErrInvalidPostShape, PostTextMaxLength)
	}

	switch postType {
	case PostTypeOriginal:
		if !hasText {
			return fmt.Errorf("%w: original post requires text", ErrInvalidPostShape)
		}
		if hasReference {
			return fmt.Errorf("%w: original post cannot reference another post", ErrInvalidPostShape)
		}
	case PostTypeReposting:
		if text != nil {
			return fmt.Errorf("%w: reposting cannot carry text", ErrInvalidPostShape)
		}
		if !hasReference {
			return fmt.Errorf("%w: reposting requires reference_post_id", ErrInvalidPostShape)
		}
	case PostTypeQuote:
		if !hasText {
			return fmt.Errorf("%w: quote requires text", ErrInvalidPostShape)
		}
		if !hasReference {
			return fmt.Errorf("%w: quote requires reference_post_id", ErrInvalidPostShape)
		}
	}
	return nil
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	return ValidatePostShape(p.PostType, p.Text, p.ReferencePostID)
}
