package handler

import (
	"strconv"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/response"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	feedSvc service.FeedService
}

func NewPostHandler(postSvc service.PostService, feedSvc service.FeedService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		feedSvc: feedSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	username, err := callerUsername(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreatePostDTO
	if err = bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), username, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), callerID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPostsByUsername 页越界时 data 为 null
func (s *PostHandler) GetPostsByUsername(c *gin.Context) {
	var query dto.PageQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.feedSvc.GetPostsByUsername(c.Request.Context(), query.Page, c.Param("username"), callerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
