package middleware

import (
	"context"
	"strings"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/response"
	"twijournal/internal/pkg/security"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将调用方身份注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			response.Error(c, service.ErrCallerAbsent)
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

func parseBearer(c *gin.Context) (*security.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	claims, err := security.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setCaller(c *gin.Context, claims *security.UserClaims) {
	c.Set(consts.ContextUserID, claims.UserID)
	c.Set(consts.ContextUsername, claims.Username)

	newCtx := context.WithValue(c.Request.Context(), consts.ContextUserID, claims.UserID)
	c.Request = c.Request.WithContext(newCtx)
}
