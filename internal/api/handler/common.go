package handler

import (
	"fmt"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/util"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("%w: %v", util.ErrValidation, err)
	}
	return util.ValidateDTO(obj)
}

func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return fmt.Errorf("%w: %v", util.ErrValidation, err)
	}
	return nil
}

// callerUsername 鉴权中间件写入的调用方用户名
func callerUsername(c *gin.Context) (string, error) {
	username := c.GetString(consts.ContextUsername)
	if username == "" {
		return "", service.ErrCallerAbsent
	}
	return username, nil
}

// callerID 未登录时为 0
func callerID(c *gin.Context) int64 {
	return c.GetInt64(consts.ContextUserID)
}
