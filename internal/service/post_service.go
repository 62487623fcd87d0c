package service

import (
	"context"
	log "log/slog"
	"time"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"
	"twijournal/internal/model"
	"twijournal/internal/pkg/util"
	"twijournal/internal/repository"

	"github.com/pkg/errors"
)

type PostService interface {
	CreatePost(ctx context.Context, callerUsername string, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, callerID int64, postID int64) (*dto.PostItemDTO, error)
}

type PostServiceImpl struct {
	userSvc          UserService
	userFollowSvc    UserFollowService
	postRepo         repository.PostRepo
	dailyCounterRepo repository.PostDailyCounterRepo
	feedCfg          config.FeedConfig
	now              func() time.Time
}

func NewPostService(
	userSvc UserService,
	userFollowSvc UserFollowService,
	postRepo repository.PostRepo,
	dailyCounterRepo repository.PostDailyCounterRepo,
	feedCfg config.FeedConfig,
) *PostServiceImpl {
	return &PostServiceImpl{
		userSvc:          userSvc,
		userFollowSvc:    userFollowSvc,
		postRepo:         postRepo,
		dailyCounterRepo: dailyCounterRepo,
		feedCfg:          feedCfg,
		now:              time.Now,
	}
}

// WithClock 替换发帖时间来源，配额按该时间的自然日计算
func (s *PostServiceImpl) WithClock(now func() time.Time) *PostServiceImpl {
	s.now = now
	return s
}

// CreatePost 校验帖子形态与当日配额后写入。
// 配额预检只用于快速失败，真正的上限由仓储事务内的计数行保证。
func (s *PostServiceImpl) CreatePost(ctx context.Context, callerUsername string, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	author, err := s.userSvc.ResolveUser(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	postType := model.PostType(req.PostType)
	if err = model.ValidatePostShape(postType, req.Text, req.ReferencePostID); err != nil {
		return nil, &ShapeError{Reason: err}
	}

	if req.ReferencePostID != nil {
		exists, err := s.postRepo.ExistsPost(ctx, *req.ReferencePostID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrPostNotFound
		}
	}

	limit := s.feedCfg.UserMaxPostsPerDay
	publishedAt := s.now()
	year, day := model.CalendarDay(publishedAt)
	count, err := s.dailyCounterRepo.GetCounter(ctx, author.ID, year, day)
	if err != nil {
		return nil, err
	}
	if count >= limit {
		return nil, &QuotaExceededError{Limit: limit}
	}

	post := &model.Post{
		ReferencePostID: req.ReferencePostID,
		PostType:        postType,
		Text:            req.Text,
		PublishedBy:     author.ID,
		PublishedAt:     publishedAt,
	}
	err = s.postRepo.CreatePost(ctx, post, limit)
	switch {
	case errors.Is(err, repository.ErrDailyQuotaReached):
		return nil, &QuotaExceededError{Limit: limit}
	case errors.Is(err, model.ErrInvalidPostShape):
		return nil, &ShapeError{Reason: err}
	case err != nil:
		return nil, err
	}

	invalidateProfiles(ctx, author.Username)
	log.InfoContext(ctx, "post created", "post_id", post.ID, "post_type", post.PostType, "user_id", author.ID)

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		post.Author = author
		created = post
	}
	return toPostDTO(created), nil
}

// GetPost 帖子详情，callerID 为 0 时 following_user 恒为 false
func (s *PostServiceImpl) GetPost(ctx context.Context, callerID int64, postID int64) (*dto.PostItemDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	following := false
	if callerID != 0 {
		following, err = s.userFollowSvc.IsFollowing(ctx, callerID, post.PublishedBy)
		if err != nil {
			return nil, err
		}
	}
	return buildPostItem(post, following, s.feedCfg.PostDetailURI), nil
}

// buildPostItem 帖子 + post 链接，引用其他帖子时追加 reference_post 链接
func buildPostItem(post *model.Post, following bool, detailURI string) *dto.PostItemDTO {
	links := []dto.HateoasDTO{util.PostLink(detailURI, post.ID)}
	if post.ReferencePostID != nil {
		links = append(links, util.ReferencePostLink(detailURI, *post.ReferencePostID))
	}
	return &dto.PostItemDTO{
		Post:          toPostDTO(post),
		FollowingUser: following,
		Links:         links,
	}
}
