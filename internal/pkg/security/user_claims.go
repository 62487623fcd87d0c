package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = "twijournal"
	jwtIssuer         = "twijournal"
	jwtExpirationTime = time.Hour * 24
)

// UserClaims 调用方身份，用户名是业务层使用的主键
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
