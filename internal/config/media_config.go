package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type MediaConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	APIKey               string        `mapstructure:"api_key"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	MaxUploadSizeMB      int           `mapstructure:"max_upload_size_mb"`
}

func (config MediaConfig) validate() error {

	var missingFields []string

	if config.BaseURL == "" {
		missingFields = append(missingFields, "base_url")
	}

	if config.APIKey == "" {
		missingFields = append(missingFields, "api_key")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config MediaConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("media.base_url", "MEDIA_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("media.api_key", "MEDIA_API_KEY"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
