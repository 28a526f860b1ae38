package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type DBConfig struct {
	Driver           string `mapstructure:"driver"`
	ConnectionString string `mapstructure:"connection_string"`
}

func (config DBConfig) validate() error {

	var errs []string

	if config.ConnectionString == "" {
		errs = append(errs, "missing connection_string")
	}

	switch config.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, "driver must be postgres or sqlite")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid db config: %s", strings.Join(errs, ", "))
	}

	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("db.driver", "DB_DRIVER"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
