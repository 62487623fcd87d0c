package handler

import (
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/response"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, user)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	view, err := s.userSvc.GetUserView(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	var query dto.PageQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	users, err := s.userSvc.ListUsers(c.Request.Context(), query.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
