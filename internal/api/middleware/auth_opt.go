package middleware

import (
	"twijournal/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入身份，失败或缺失则 user_id 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.Set(consts.ContextUserID, int64(0))
			c.Next()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}
