package handler

import (
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/response"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// IssueToken 为已存在的用户签发 token
func (s *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequestDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.IssueToken(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}
