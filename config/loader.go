package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// envBindings maps config keys to the environment variables that override
// them. Secrets are expected to arrive this way rather than in the YAML
// file.
var envBindings = map[string]string{
	"name":                      "INVENTARIO_NAME",
	"environment":               "INVENTARIO_ENVIRONMENT",
	"debug":                     "INVENTARIO_DEBUG",
	"logging.level":             "INVENTARIO_LOG_LEVEL",
	"logging.format":            "INVENTARIO_LOG_FORMAT",
	"server.host":               "INVENTARIO_SERVER_HOST",
	"server.port":               "INVENTARIO_SERVER_PORT",
	"auth.jwt.secret":           "INVENTARIO_JWT_SECRET",
	"auth.jwt.method":           "INVENTARIO_JWT_METHOD",
	"auth.jwt.issuer":           "INVENTARIO_JWT_ISSUER",
	"auth.jwt.audience":         "INVENTARIO_JWT_AUDIENCE",
	"auth.jwt.token_ttl":        "INVENTARIO_JWT_TOKEN_TTL",
	"auth.password.algorithm":   "INVENTARIO_PASSWORD_ALGORITHM",
	"auth.password.bcrypt_cost": "INVENTARIO_PASSWORD_BCRYPT_COST",
	"store.driver":              "INVENTARIO_STORE_DRIVER",
	"store.path":                "INVENTARIO_STORE_PATH",
}

// Load reads the configuration, applies defaults, and validates it. The
// precedence is environment variables over the .env file over the YAML
// file over built-in defaults.
func Load(opts ...LoaderOption) (*Config, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Load .env first so its variables participate in env binding.
	if envFile := resolveFile(o.envFile, []string{".env"}); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envVar, err)
		}
	}

	configFile := resolveFile(o.configFile, []string{"config.yml", "config/config.yml", "cmd/server/config.yml"})
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveFile returns the explicit path when given, otherwise the first
// candidate that exists.
func resolveFile(explicit string, candidates []string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
