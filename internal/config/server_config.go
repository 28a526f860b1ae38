package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	MetricsPort    int      `mapstructure:"metrics_port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	CookieSecure   bool     `mapstructure:"cookie_secure"`
	CookieSameSite string   `mapstructure:"cookie_same_site"`
}

func (config ServerConfig) validate() error {

	var invalidFields []string

	if config.Port <= 0 {
		invalidFields = append(invalidFields, "port")
	}

	if config.MetricsPort <= 0 {
		invalidFields = append(invalidFields, "metrics_port")
	}

	switch strings.ToLower(config.CookieSameSite) {
	case "", "lax", "strict", "none":
	default:
		invalidFields = append(invalidFields, "cookie_same_site")
	}

	if len(invalidFields) > 0 {
		return fmt.Errorf("invalid variables: %s", strings.Join(invalidFields, ", "))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "SERVER_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.cookie_secure", "COOKIE_SECURE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
