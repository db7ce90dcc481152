package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	t.Run("sqlite dsn enables foreign keys", func(t *testing.T) {
		cfg := Config{Driver: DriverSQLite, Path: "peladas.db"}
		assert.Equal(t, "file:peladas.db?_fk=1", BuildDSN(cfg))
	})

	t.Run("postgres dsn", func(t *testing.T) {
		cfg := Config{
			Driver:   DriverPostgres,
			Host:     "localhost",
			User:     "postgres",
			Password: "secret",
			DBName:   "peladas",
			Port:     "5432",
			SSLMode:  "disable",
			TimeZone: "UTC",
		}

		dsn := BuildDSN(cfg)
		assert.Contains(t, dsn, "host=localhost")
		assert.Contains(t, dsn, "dbname=peladas")
		assert.Contains(t, dsn, "sslmode=disable")
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults to embedded sqlite", func(t *testing.T) {
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("DB_PATH")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, DriverSQLite, cfg.Driver)
		assert.Equal(t, "peladas.db", cfg.Path)
	})

	t.Run("reads driver and path from env", func(t *testing.T) {
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DB_HOST", "db.internal")
		defer os.Unsetenv("DB_DRIVER")
		defer os.Unsetenv("DB_HOST")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, DriverPostgres, cfg.Driver)
		assert.Equal(t, "db.internal", cfg.Host)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid sqlite config", func(t *testing.T) {
		cfg := Config{Driver: DriverSQLite, Path: "peladas.db"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("sqlite without path", func(t *testing.T) {
		cfg := Config{Driver: DriverSQLite}
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid postgres config", func(t *testing.T) {
		cfg := Config{Driver: DriverPostgres, Host: "localhost", DBName: "peladas"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("postgres without host", func(t *testing.T) {
		cfg := Config{Driver: DriverPostgres, DBName: "peladas"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := Config{Driver: "oracle"}
		assert.Error(t, cfg.Validate())
	})
}

func TestSanitizeError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, Config{}))
	})

	t.Run("password is masked", func(t *testing.T) {
		cfg := Config{Password: "secret"}
		err := SanitizeError(errors.New("auth failed for password secret"), cfg)

		require.Error(t, err)
		assert.NotContains(t, err.Error(), "secret")
		assert.Contains(t, err.Error(), "***")
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")

		cfg := LoadRetryConfigFromEnv()
		assert.Equal(t, 5, cfg.MaxAttempts)
		assert.NotEmpty(t, cfg.RetryableErrors)
	})

	t.Run("overrides from env", func(t *testing.T) {
		os.Setenv("DB_RETRY_MAX_ATTEMPTS", "2")
		os.Setenv("DB_RETRY_INITIAL_DELAY", "100ms")
		defer os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")
		defer os.Unsetenv("DB_RETRY_INITIAL_DELAY")

		cfg := LoadRetryConfigFromEnv()
		assert.Equal(t, 2, cfg.MaxAttempts)
		assert.Equal(t, 100*time.Millisecond, cfg.InitialDelay)
	})
}
