package wire

import (
	"Lighthouse/internal/api"
	"Lighthouse/internal/api/config"
	"Lighthouse/internal/api/handler"
	"Lighthouse/internal/job"
	"Lighthouse/internal/pkg/cron"
	"Lighthouse/internal/pkg/ipresolver"
	"Lighthouse/internal/pkg/minio"
	"Lighthouse/internal/pkg/redis"
	"Lighthouse/internal/pkg/security"
	"Lighthouse/internal/repository"
	"Lighthouse/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// multipartOverhead 上传请求体在文件上限之外允许的表单开销
const multipartOverhead = 1 << 20

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, storage *minio.Storage, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	contactRepo := repository.NewContactRepo(db)

	tokens := security.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.JWTIssuer, cfg.Security.TokenTTL)
	blacklist := redis.NewTokenBlacklist()
	registry := redis.NewMediaRegistry()
	resolver := ipresolver.New(cfg.IPResolver)

	userService := service.NewUserService(userRepo, tokens, blacklist, resolver)
	postService := service.NewPostService(postRepo, storage, registry, resolver)
	contactService := service.NewContactService(contactRepo)
	mediaService := service.NewMediaService(storage, registry, cfg.Upload)

	cookie := handler.CookieOptions{
		Secure: cfg.Server.CookieSecure,
		MaxAge: tokens.TTL(),
	}
	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService, cookie),
		PostHandler:    handler.NewPostHandler(postService),
		ContactHandler: handler.NewContactHandler(contactService),
		MediaHandler:   handler.NewMediaHandler(mediaService, cfg.Upload.FileMaxSize+multipartOverhead),
		Verifier:       userService,
	}

	router := api.SetupRouter(handlers, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
	})

	mediaCleanupJob := job.NewMediaCleanupJob(registry, storage, cfg.Upload.TempTTL)
	cronMgr := cron.NewCronManager(mediaCleanupJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
