package handler

import (
	"Lighthouse/internal/pkg/consts"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieOptions 会话 Cookie 设置
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

func setTokenCookie(c *gin.Context, opts CookieOptions, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(consts.TokenCookieName, token, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
}

func clearTokenCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(consts.TokenCookieName, "", -1, "/", "", opts.Secure, true)
}
