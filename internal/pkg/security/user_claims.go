package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL 会话令牌有效期
const DefaultTokenTTL = time.Hour * 24

// UserClaims 令牌中携带的身份信息
type UserClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
