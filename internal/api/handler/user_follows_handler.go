package handler

import (
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/response"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	var query dto.PageQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	followers, err := s.userFollowSvc.GetFollowers(c.Request.Context(), c.Param("username"), query.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *UserFollowHandler) GetFollowees(c *gin.Context) {
	var query dto.PageQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	followees, err := s.userFollowSvc.GetFollowees(c.Request.Context(), c.Param("username"), query.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followees)
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	follower, followee, err := s.bindPair(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.userFollowSvc.Follow(c.Request.Context(), follower, followee); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	follower, followee, err := s.bindPair(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.userFollowSvc.Unfollow(c.Request.Context(), follower, followee); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessNoContent(c)
}

func (s *UserFollowHandler) bindPair(c *gin.Context) (string, string, error) {
	follower, err := callerUsername(c)
	if err != nil {
		return "", "", err
	}
	var req dto.FollowDTO
	if err = bindJSON(c, &req); err != nil {
		return "", "", err
	}
	return follower, req.Followee, nil
}
