package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	apiBaseURLKey         = "api_base_url"
	requestTimeoutKey     = "request_timeout"
	loginTimeoutKey       = "login_timeout"
	sessionDirKey         = "session_dir"
	cacheSizeKey          = "cache_size"
	cacheTTLKey           = "cache_ttl"
	tenantMockFallbackKey = "tenant_mock_fallback"
)

// ClientConfig configures the API client and the session manager.
type ClientConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
	GetLoginTimeout() time.Duration
	GetSessionDir() string
	GetCacheSize() int
	GetCacheTTL() time.Duration
	GetTenantMockFallback() bool
}

type Client struct {
	v *viper.Viper
}

var _ ClientConfig = Client{}

func (c Client) GetAPIBaseURL() string {
	return strings.TrimRight(c.v.GetString(apiBaseURLKey), "/")
}

func (c Client) GetRequestTimeout() time.Duration {
	return c.v.GetDuration(requestTimeoutKey)
}

func (c Client) GetLoginTimeout() time.Duration {
	return c.v.GetDuration(loginTimeoutKey)
}

func (c Client) GetSessionDir() string {
	return c.v.GetString(sessionDirKey)
}

func (c Client) GetCacheSize() int {
	return c.v.GetInt(cacheSizeKey)
}

func (c Client) GetCacheTTL() time.Duration {
	return c.v.GetDuration(cacheTTLKey)
}

// GetTenantMockFallback enables the local mock when tenant registration fails. Development only.
func (c Client) GetTenantMockFallback() bool {
	return c.v.GetBool(tenantMockFallbackKey)
}
