package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	c := config.New(viper.New())

	require.Equal(t, "Colten", c.GetAppName())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "http://localhost:8080/api", c.GetAPIBaseURL())
	require.Equal(t, 30*time.Second, c.GetRequestTimeout())
	require.Equal(t, 30*time.Second, c.GetLoginTimeout())
	require.Equal(t, 128, c.GetCacheSize())
	require.False(t, c.GetTenantMockFallback())
	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, 24*time.Hour, c.GetTokenExpiry())
}

func TestConfig_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("api_base_url", "https://api.colten.test/api/")
	v.Set("port", ":9090")
	v.Set("env", "prod")
	v.Set("login_timeout", "5s")
	v.Set("allowed_origins", []string{"https://app.colten.test"})
	c := config.New(v)

	require.Equal(t, "https://api.colten.test/api", c.GetAPIBaseURL())
	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "PROD", c.GetEnv())
	require.Equal(t, 5*time.Second, c.GetLoginTimeout())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("https://app.colten.test"))
	require.False(t, c.GetAllowedOrigins().IsAllowedOrigin("https://evil.test"))
}

func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("COLTEN_API_BASE_URL", "http://127.0.0.1:8081/api")
	t.Setenv("COLTEN_TENANT_MOCK_FALLBACK", "true")

	v, err := config.Load("")
	require.NoError(t, err)
	c := config.New(v)

	require.Equal(t, "http://127.0.0.1:8081/api", c.GetAPIBaseURL())
	require.True(t, c.GetTenantMockFallback())
}
