package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	portKey        = "port"
	jwtSecretKey   = "jwt_secret"
	tokenExpiryKey = "token_expiry"
)

// MockAPIConfig configures the development stand-in for the REST backend.
type MockAPIConfig interface {
	GetPort() string
	GetJWTSecret() string
	GetTokenExpiry() time.Duration
}

type MockAPI struct {
	v *viper.Viper
}

var _ MockAPIConfig = MockAPI{}

// GetPort returns the listen address, always prefixed with ':'.
func (m MockAPI) GetPort() string {
	port := m.v.GetString(portKey)
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (m MockAPI) GetJWTSecret() string {
	return m.v.GetString(jwtSecretKey)
}

func (m MockAPI) GetTokenExpiry() time.Duration {
	return m.v.GetDuration(tokenExpiryKey)
}
