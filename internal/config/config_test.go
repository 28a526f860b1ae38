package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")
	os.Setenv("JWT_SECRET", "override-secret")
	os.Setenv("TOKEN_TTL", "12h")
	os.Setenv("DB_DRIVER", "sqlite")
	os.Setenv("DB_CONNECTION_STRING", "override.db")
	os.Setenv("MEDIA_BASE_URL", "https://media.override.test")
	os.Setenv("MEDIA_API_KEY", "override-key")
	defer func() {
		for _, key := range []string{"CONFIG_PATH", "JWT_SECRET", "TOKEN_TTL", "DB_DRIVER",
			"DB_CONNECTION_STRING", "MEDIA_BASE_URL", "MEDIA_API_KEY"} {
			os.Unsetenv(key)
		}
	}()

	cfg := Get()

	assert.Equal(t, "override-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "override.db", cfg.DB.ConnectionString)
	assert.Equal(t, "https://media.override.test", cfg.Media.BaseURL)
	assert.Equal(t, "override-key", cfg.Media.APIKey)
}

func Test_DBConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  DBConfig
		wantErr bool
	}{
		{"valid sqlite", DBConfig{Driver: "sqlite", ConnectionString: "app.db"}, false},
		{"valid postgres", DBConfig{Driver: "postgres", ConnectionString: "host=localhost"}, false},
		{"unknown driver", DBConfig{Driver: "mongo", ConnectionString: "x"}, true},
		{"missing connection string", DBConfig{Driver: "sqlite"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_AuthConfig_Validate_ReportsMissingFields(t *testing.T) {
	err := AuthConfig{}.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
	assert.Contains(t, err.Error(), "token_ttl")

	err = AuthConfig{JWTSecret: "s", TokenTTL: time.Hour}.validate()
	require.NoError(t, err)
}

func Test_ServerConfig_Validate_RejectsBadSameSite(t *testing.T) {
	cfg := ServerConfig{Port: 8080, MetricsPort: 9090, CookieSameSite: "weird"}
	require.Error(t, cfg.validate())

	cfg.CookieSameSite = "strict"
	require.NoError(t, cfg.validate())
}
