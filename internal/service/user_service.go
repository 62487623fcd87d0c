package service

import (
	"context"
	log "log/slog"
	"time"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"
	"twijournal/internal/model"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/pkg/security"
	"twijournal/internal/pkg/util"
	"twijournal/internal/repository"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const userProfileTTL = time.Hour * 1

type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserDTO) (*dto.UserDTO, error)
	GetUserView(ctx context.Context, username string) (*dto.UserViewDTO, error)
	ListUsers(ctx context.Context, page int) (*dto.UserPageDTO, error)
	ResolveUser(ctx context.Context, username string) (*model.User, error)
	IssueToken(ctx context.Context, username string) (*dto.TokenDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	feedCfg  config.FeedConfig
}

func NewUserService(userRepo repository.UserRepo, feedCfg config.FeedConfig) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		feedCfg:  feedCfg,
	}
}

// Register 创建用户，统计行在同一事务内清零创建
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.CreateUserDTO) (*dto.UserDTO, error) {
	if !model.IsValidUsername(req.Username) {
		return nil, ErrParamInvalid
	}

	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return toUserDTO(user), nil
}

// GetUserView 用户主页（资料 + 计数），优先读缓存
func (s *UserServiceImpl) GetUserView(ctx context.Context, username string) (*dto.UserViewDTO, error) {
	key := consts.UserProfileKey + username
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read profile cache failed", "key", key, "err", err)
	}
	if value != "" {
		var view *dto.UserViewDTO
		if err = json.Unmarshal([]byte(value), &view); err == nil {
			return view, nil
		}
		log.WarnContext(ctx, "decode profile cache failed", "key", key, "err", err)
	}

	user, err := s.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	view := &dto.UserViewDTO{
		User:       toUserDTO(user),
		Statistics: toStatisticsDTO(user.Statistics),
	}

	jsonStr, err := json.Marshal(view)
	if err == nil {
		err = redis.SetWithExpiration(ctx, key, string(jsonStr), userProfileTTL)
	}
	if err != nil {
		log.WarnContext(ctx, "write profile cache failed", "key", key, "err", err)
	}
	return view, nil
}

// ListUsers 页码越界或为空时返回 nil
func (s *UserServiceImpl) ListUsers(ctx context.Context, page int) (*dto.UserPageDTO, error) {
	size := s.feedCfg.FollowPageSize
	if !util.PageInRange(page, size) {
		return nil, nil
	}
	users, total, err := s.userRepo.ListUsers(ctx, size, util.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &dto.UserPageDTO{
		Users:      toUserDTOs(users),
		PageNumber: page,
		TotalPages: util.TotalPages(total, size),
		TotalUsers: total,
	}, nil
}

// ResolveUser 用户名 -> 用户，不存在返回 ErrUserNotFound
func (s *UserServiceImpl) ResolveUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// IssueToken 为已存在的用户签发 token
func (s *UserServiceImpl) IssueToken(ctx context.Context, username string) (*dto.TokenDTO, error) {
	user, err := s.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// invalidateProfiles 计数变化后删除主页缓存
func invalidateProfiles(ctx context.Context, usernames ...string) {
	keys := make([]string, 0, len(usernames))
	for _, username := range usernames {
		keys = append(keys, consts.UserProfileKey+username)
	}
	if err := redis.DeleteKey(ctx, keys...); err != nil {
		log.WarnContext(ctx, "invalidate profile cache failed", "keys", keys, "err", err)
	}
}
