package redis

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/consts"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// TokenBlacklist 已注销令牌的签名，保留到令牌自然过期
type TokenBlacklist struct{}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

func (s *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetWithExpiration(ctx, consts.RevokedTokenKey+signature, 1, ttl)
}

func (s *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	value, err := GetValue(ctx, consts.RevokedTokenKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// MediaRegistry 临时上传登记表，key 为对象 key
type MediaRegistry struct{}

func NewMediaRegistry() *MediaRegistry {
	return &MediaRegistry{}
}

func (s *MediaRegistry) Register(ctx context.Context, key string, meta dto.MediaTempMetadata) error {
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return HSet(ctx, consts.MediaTempKey, key, string(metaBytes))
}

func (s *MediaRegistry) Claim(ctx context.Context, keys ...string) error {
	return HDel(ctx, consts.MediaTempKey, keys...)
}

func (s *MediaRegistry) Pending(ctx context.Context) (map[string]dto.MediaTempMetadata, error) {
	all, err := HGetAll(ctx, consts.MediaTempKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.MediaTempMetadata, len(all))
	for key, val := range all {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil {
			log.WarnContext(ctx, "invalid media meta format", "key", key)
			continue
		}
		out[key] = meta
	}
	return out, nil
}
