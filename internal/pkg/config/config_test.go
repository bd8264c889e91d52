//go:build unit

package config_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/does-not-exist.env")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "secret")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
		assert.Equal(t, config.CacheDriverMemory, cfg.Cache.Driver)
		assert.Equal(t, "@every 15m", cfg.Stock.ReconcileSchedule)
		assert.Equal(t, 5, cfg.Booking.IDMaxAttempts)
		assert.Equal(t, 10, cfg.Booking.DefaultPageSize)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
