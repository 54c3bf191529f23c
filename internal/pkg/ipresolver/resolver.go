package ipresolver

import (
	"Lighthouse/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Resolver 通过外部服务获取访问来源的公网 IP
type Resolver struct {
	client *resty.Client
	url    string
}

type ipifyResponse struct {
	IP string `json:"ip"`
}

func New(cfg config.IPResolverConfig) *Resolver {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Resolver{client: client, url: cfg.URL}
}

func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	var body ipifyResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(r.url)
	if err != nil {
		return "", fmt.Errorf("ip lookup: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ip lookup: unexpected status %d", resp.StatusCode())
	}
	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", errors.New("ip lookup: empty address")
	}
	return ip, nil
}

// ResolveOr 查询失败时退回本地观测到的地址，永不失败
func (r *Resolver) ResolveOr(ctx context.Context, fallback string) string {
	ip, err := r.Resolve(ctx)
	if err != nil {
		log.WarnContext(ctx, "ip lookup failed, using local address", "err", err, "fallback", fallback)
		return fallback
	}
	return ip
}
