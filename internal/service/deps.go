package service

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/minio"
	"Lighthouse/internal/pkg/security"
	"context"
	"io"
	"time"
)

// TokenIssuer 会话令牌签发与校验，由 security.TokenManager 实现
type TokenIssuer interface {
	TTL() time.Duration
	GenerateToken(userID, username string) (string, error)
	ValidateToken(token string) (*security.UserClaims, error)
	RemainingTTL(claims *security.UserClaims) time.Duration
}

// TokenRevoker 已注销令牌登记，由 redis.TokenBlacklist 实现
type TokenRevoker interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

// OriginResolver 访问来源解析，失败时返回 fallback
type OriginResolver interface {
	ResolveOr(ctx context.Context, fallback string) string
}

// ObjectStorage 对象存储，由 minio.Storage 实现
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, opts minio.UploadOptions) (string, error)
	Delete(ctx context.Context, objectName string) error
	ObjectKey(rawURL string) (string, bool)
}

// UploadRegistry 临时上传登记表，由 redis.MediaRegistry 实现
type UploadRegistry interface {
	Register(ctx context.Context, key string, meta dto.MediaTempMetadata) error
	Claim(ctx context.Context, keys ...string) error
	Pending(ctx context.Context) (map[string]dto.MediaTempMetadata, error)
}
