package repository

import (
	"context"
	"twijournal/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, dailyLimit int64) error
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	ExistsPost(ctx context.Context, id int64) (bool, error)
	GetPostsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Post, int64, error)
	GetFeedPosts(ctx context.Context, callerID int64, onlyFollowing bool, limit, offset int) ([]*model.Post, int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// CreatePost 一个事务内依次：当天计数 +1（超出 dailyLimit 则回滚）、写入帖子、作者 posts_counter +1
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, dailyLimit int64) error {
	year, day := model.CalendarDay(post.PublishedAt)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := incrementDailyCounter(tx, post.PublishedBy, year, day)
		if err != nil {
			return err
		}
		if count > dailyLimit {
			return ErrDailyQuotaReached
		}

		if err = tx.Omit(clause.Associations).Create(post).Error; err != nil {
			if errors.Is(err, model.ErrInvalidPostShape) {
				return err
			}
			return translateError(err, nil, "create post")
		}

		return addPostsCounter(tx, post.PublishedBy)
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("ReferencePost").
		Preload("ReferencePost.Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get post")
	}
	return &post, nil
}

func (s *PostRepoImpl) ExistsPost(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check post exists")
	}
	return count > 0, nil
}

// GetPostsByUser 某个用户的帖子，id 倒序
func (s *PostRepoImpl) GetPostsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Post, int64, error) {
	return s.page(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("published_by = ?", userID)
	}, limit, offset)
}

// GetFeedPosts 全站帖子，onlyFollowing 时只保留 caller 关注的作者，id 倒序
func (s *PostRepoImpl) GetFeedPosts(ctx context.Context, callerID int64, onlyFollowing bool, limit, offset int) ([]*model.Post, int64, error) {
	return s.page(ctx, func(db *gorm.DB) *gorm.DB {
		if !onlyFollowing {
			return db
		}
		followees := s.db.Model(&model.FollowEdge{}).
			Select("followee_id").
			Where("follower_id = ?", callerID)
		return db.Where("published_by IN (?)", followees)
	}, limit, offset)
}

func (s *PostRepoImpl) page(ctx context.Context, scope func(db *gorm.DB) *gorm.DB, limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Scopes(scope).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "count posts")
	}
	if total == 0 || int64(offset) >= total {
		return []*model.Post{}, total, nil
	}

	posts := make([]*model.Post, 0, limit)
	err = s.db.WithContext(ctx).
		Scopes(scope).
		Preload("Author").
		Preload("ReferencePost").
		Preload("ReferencePost.Author").
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "page posts")
	}
	return posts, total, nil
}
