package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "STORE_DRIVER", "JWT_SECRET", "JWT_TTL", "CORS_ORIGINS", "APP_TIMEZONE", "S3_BUCKET", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, StorePostgres, cfg.StoreDriver)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	require.Empty(t, cfg.TrustedProxies)
	require.Equal(t, ":8080", cfg.Addr())
	require.False(t, cfg.S3.Enabled())
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("JWT_TTL", "36h")
	t.Setenv("LOGIN_RATE_WINDOW", "90")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://app.example.com,")
	t.Setenv("S3_BUCKET", "exports")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 172.16.0.0/12")

	cfg := FromEnv()

	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.Equal(t, 36*time.Hour, cfg.JWTTTL)
	require.Equal(t, 90*time.Second, cfg.LoginRateWindow)
	require.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins)
	require.True(t, cfg.S3.Enabled())
	require.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
	require.Equal(t, ":9000", cfg.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown driver", func(c *Config) { c.StoreDriver = "mongo" }, false},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }, false},
		{"default secret in prod", func(c *Config) { c.Env = "prod" }, false},
		{"custom secret in prod", func(c *Config) { c.Env = "prod"; c.JWTSecret = "s3cr3t" }, true},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, false},
		{"bcrypt cost too low", func(c *Config) { c.BcryptCost = 2 }, false},
		{"zero ttl", func(c *Config) { c.JWTTTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Env:             "dev",
				StoreDriver:     StorePostgres,
				DBUrl:           "postgres://localhost/db",
				JWTSecret:       defaultJWTSecret,
				JWTTTL:          time.Hour,
				BcryptCost:      10,
				Timezone:        "America/Sao_Paulo",
				LoginRateLimit:  5,
				LoginRateWindow: time.Minute,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
