package api

import (
	"Lighthouse/internal/api/handler"
	"Lighthouse/internal/api/middleware"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	ContactHandler *handler.ContactHandler
	MediaHandler   *handler.MediaHandler

	// Verifier 供鉴权中间件校验 Cookie 中的令牌
	Verifier middleware.TokenVerifier
}

// RouterOptions 路由层配置
type RouterOptions struct {
	AllowedOrigins []string
	TrustedProxies []string
}
