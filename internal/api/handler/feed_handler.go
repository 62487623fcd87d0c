package handler

import (
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/response"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) GetFeed(c *gin.Context) {
	username, err := callerUsername(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var query dto.FeedQueryDTO
	if err = bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	feed, err := s.feedSvc.GetPostsForFeed(c.Request.Context(), query.Page, username, query.OnlyFollowing)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
