package ipresolver

import (
	"Lighthouse/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(url string) *Resolver {
	return New(config.IPResolverConfig{URL: url, Timeout: time.Second})
}

func TestResolve_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer srv.Close()

	ip, err := newResolver(srv.URL).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestResolveOr_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.Equal(t, "10.0.0.1", newResolver(srv.URL).ResolveOr(context.Background(), "10.0.0.1"))
}

func TestResolveOr_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	assert.Equal(t, "10.0.0.2", newResolver(srv.URL).ResolveOr(context.Background(), "10.0.0.2"))
}

func TestResolveOr_Unreachable(t *testing.T) {
	r := newResolver("http://127.0.0.1:1/unreachable")
	assert.Equal(t, "192.168.0.9", r.ResolveOr(context.Background(), "192.168.0.9"))
}
