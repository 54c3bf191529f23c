package middleware

import (
	"Lighthouse/internal/pkg/logger"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/service"
	log "log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware 捕获 panic，返回统一错误结构并上报 Sentry
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := debug.Stack()
				ctx := c.Request.Context()
				log.ErrorContext(ctx, "panic recovered", "panic", rec, "stack", string(stack))
				logger.CapturePanic(ctx, rec, stack)
				if !c.Writer.Written() {
					response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
