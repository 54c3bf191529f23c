package api

import (
	"Lighthouse/internal/api/middleware"
	"Lighthouse/internal/pkg/logger"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, opts RouterOptions) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		log.Warn("invalid trusted proxies", "err", err)
	}

	// TraceId & Recovery & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(group.Verifier)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", group.UserHandler.Signup)
			authGroup.POST("/login", group.UserHandler.Login)
			authGroup.POST("/logout", group.UserHandler.Logout)
			authGroup.POST("/verify-token", group.UserHandler.VerifyToken)
			authGroup.DELETE("/delete/:userId", auth, group.UserHandler.DeleteUser)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.GetPosts)
			postGroup.GET("/:id", group.PostHandler.GetPost)

			adminGroup := postGroup.Group("")
			adminGroup.Use(auth)
			{
				adminGroup.POST("", group.PostHandler.CreatePost)
				adminGroup.PUT("/:id", group.PostHandler.UpdatePost)
				adminGroup.DELETE("/:id", group.PostHandler.DeletePost)
			}
		}

		contactGroup := apiGroup.Group("/contact")
		{
			contactGroup.POST("", group.ContactHandler.CreateContact)

			adminGroup := contactGroup.Group("")
			adminGroup.Use(auth)
			{
				adminGroup.GET("", group.ContactHandler.GetContacts)
				adminGroup.GET("/:id", group.ContactHandler.GetContact)
				adminGroup.PUT("/:id", group.ContactHandler.UpdateContactStatus)
				adminGroup.DELETE("/:id", group.ContactHandler.DeleteContact)
			}
		}

		uploadGroup := apiGroup.Group("/upload")
		uploadGroup.Use(auth)
		{
			uploadGroup.POST("/image", group.MediaHandler.UploadImage)
			uploadGroup.POST("/file", group.MediaHandler.UploadFile)
		}
	}

	return r
}
