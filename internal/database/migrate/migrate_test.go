package migrate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		os.Unsetenv("MIGRATIONS_PATH")

		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("env override", func(t *testing.T) {
		os.Setenv("MIGRATIONS_PATH", "db/migrations")
		defer os.Unsetenv("MIGRATIONS_PATH")

		assert.Equal(t, "db/migrations", GetMigrationsPath())
	})
}

func TestMigrateWithDriver(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		err := MigrateWithDriver(nil, "sqlite")

		assert.Error(t, err)
	})

	t.Run("missing migrations directory", func(t *testing.T) {
		os.Setenv("MIGRATIONS_PATH", "no/such/dir")
		defer os.Unsetenv("MIGRATIONS_PATH")

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)

		err = MigrateWithDriver(db, "sqlite")
		assert.ErrorContains(t, err, "migrations directory does not exist")
	})
}
