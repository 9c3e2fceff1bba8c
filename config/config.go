package config

import (
	"fmt"

	"github.com/kbukum/inventario/auth/jwt"
	"github.com/kbukum/inventario/auth/password"
	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/server"
	"github.com/kbukum/inventario/store"
)

// AuthConfig groups the credential and token settings.
type AuthConfig struct {
	JWT      jwt.Config      `yaml:"jwt" mapstructure:"jwt"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// Config is the full service configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Server  server.Config `yaml:"server" mapstructure:"server"`
	Auth    AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Store   store.Config  `yaml:"store" mapstructure:"store"`
}

// ApplyDefaults fills every unset field with its default.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "inventario"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}

	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.JWT.ApplyDefaults()
	c.Auth.Password.ApplyDefaults()
	c.Store.ApplyDefaults()
}

// Validate checks the whole configuration. A missing or weak token signing
// key fails here so the process refuses to start instead of signing tokens
// with an empty secret.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[c.Environment] {
		return apperrors.Configuration(fmt.Sprintf("environment must be development, staging, or production (got: %s)", c.Environment))
	}

	if err := c.Logging.Validate(); err != nil {
		return apperrors.Configuration(err.Error())
	}
	if err := c.Server.Validate(); err != nil {
		return apperrors.Configuration(err.Error())
	}
	if err := c.Auth.JWT.Validate(); err != nil {
		return apperrors.Configuration(err.Error())
	}
	if err := c.Auth.Password.Validate(); err != nil {
		return apperrors.Configuration(err.Error())
	}
	if err := c.Store.Validate(); err != nil {
		return apperrors.Configuration(err.Error())
	}
	return nil
}
