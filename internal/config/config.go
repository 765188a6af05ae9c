package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by the config, e.g. COLTEN_API_BASE_URL.
const EnvPrefix = "COLTEN"

type Config interface {
	EnvConfig
	ClientConfig
	CorsConfig
	MockAPIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	Client
	Cors
	MockAPI
}

// New wraps v with the typed getters. Defaults are registered on v.
func New(v *viper.Viper) Config {
	SetDefaults(v)
	return mainConfig{
		EnvVars: EnvVars{v: v},
		Client:  Client{v: v},
		Cors:    Cors{v: v},
		MockAPI: MockAPI{v: v},
	}
}

// Load reads a .env file when present, then the optional config file, then COLTEN_* environment variables.
// An explicit cfgFile that cannot be read is an error; the default ~/.colten.yml is optional.
func Load(cfgFile string) (*viper.Viper, error) {
	_ = godotenv.Load() // silently ignore a missing .env

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load read %s: %w", cfgFile, err)
		}
		return v, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".colten")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(appNameKey, "Colten")
	v.SetDefault(envKey, "DEV")
	v.SetDefault(logLevelKey, "info")

	v.SetDefault(apiBaseURLKey, "http://localhost:8080/api")
	v.SetDefault(requestTimeoutKey, "30s")
	v.SetDefault(loginTimeoutKey, "30s")
	v.SetDefault(sessionDirKey, defaultSessionDir())
	v.SetDefault(cacheSizeKey, 128)
	v.SetDefault(cacheTTLKey, "30s")
	v.SetDefault(tenantMockFallbackKey, false)

	v.SetDefault(allowedOriginsKey, []string{"http://localhost:5173", "http://localhost:3000"})

	v.SetDefault(portKey, "8080")
	v.SetDefault(jwtSecretKey, "colten-development-secret")
	v.SetDefault(tokenExpiryKey, "24h")
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".colten"
	}
	return filepath.Join(home, ".colten")
}
