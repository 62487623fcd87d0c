package service

import (
	"context"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"
	"twijournal/internal/model"
	"twijournal/internal/pkg/util"
	"twijournal/internal/repository"
)

const onlyFollowingQuery = "&only_following=true"

type FeedService interface {
	GetPostsByUsername(ctx context.Context, page int, username string, callerID int64) (*dto.PostPageDTO, error)
	GetPostsForFeed(ctx context.Context, page int, callerUsername string, onlyFollowing bool) (*dto.PostPageDTO, error)
}

type FeedServiceImpl struct {
	userSvc       UserService
	userFollowSvc UserFollowService
	postRepo      repository.PostRepo
	feedCfg       config.FeedConfig
}

func NewFeedService(userSvc UserService, userFollowSvc UserFollowService, postRepo repository.PostRepo, feedCfg config.FeedConfig) FeedService {
	return &FeedServiceImpl{
		userSvc:       userSvc,
		userFollowSvc: userFollowSvc,
		postRepo:      postRepo,
		feedCfg:       feedCfg,
	}
}

// GetPostsByUsername 用户自己的帖子，页越界或为空时返回 nil
func (s *FeedServiceImpl) GetPostsByUsername(ctx context.Context, page int, username string, callerID int64) (*dto.PostPageDTO, error) {
	user, err := s.userSvc.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	size := s.feedCfg.MaxPostsPerPage
	if !util.PageInRange(page, size) {
		return nil, nil
	}
	posts, total, err := s.postRepo.GetPostsByUser(ctx, user.ID, size, util.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	following := map[int64]struct{}{}
	if callerID != 0 {
		if following, err = s.userFollowSvc.FolloweeSet(ctx, callerID); err != nil {
			return nil, err
		}
	}
	return s.buildPage(posts, total, page, size, following, s.feedCfg.PostURI+username, ""), nil
}

// GetPostsForFeed 全站或只看关注，following_user 总是按 caller 的关注集合计算
func (s *FeedServiceImpl) GetPostsForFeed(ctx context.Context, page int, callerUsername string, onlyFollowing bool) (*dto.PostPageDTO, error) {
	caller, err := s.userSvc.ResolveUser(ctx, callerUsername)
	if err != nil {
		return nil, err
	}
	size := s.feedCfg.MaxFeedPostsPerPage
	if !util.PageInRange(page, size) {
		return nil, nil
	}
	posts, total, err := s.postRepo.GetFeedPosts(ctx, caller.ID, onlyFollowing, size, util.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	following, err := s.userFollowSvc.FolloweeSet(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	query := ""
	if onlyFollowing {
		query = onlyFollowingQuery
	}
	return s.buildPage(posts, total, page, size, following, s.feedCfg.FeedURI, query), nil
}

func (s *FeedServiceImpl) buildPage(
	posts []*model.Post,
	total int64,
	page, size int,
	following map[int64]struct{},
	resourceURI, query string,
) *dto.PostPageDTO {
	items := make([]*dto.PostItemDTO, 0, len(posts))
	for _, post := range posts {
		_, ok := following[post.PublishedBy]
		items = append(items, buildPostItem(post, ok, s.feedCfg.PostDetailURI))
	}

	totalPages := util.TotalPages(total, size)
	return &dto.PostPageDTO{
		Posts:      items,
		PageNumber: page,
		TotalPages: totalPages,
		TotalPosts: total,
		Links:      util.PageLinks(resourceURI, page, totalPages, query),
	}
}
