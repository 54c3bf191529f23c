package middleware

import (
	"Lighthouse/internal/pkg/consts"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/pkg/security"
	"Lighthouse/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

// TokenVerifier 校验会话令牌，由 service.UserService 实现
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*security.UserClaims, error)
}

// AuthMiddleware 从 Cookie 读取令牌，验证后将用户身份注入 Context
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.TokenCookieName)
		if err != nil || token == "" {
			response.Error(c, service.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.UsernameKey, claims.Username)

		newCtx := context.WithValue(c.Request.Context(), consts.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
