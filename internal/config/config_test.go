package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults around the required farm API settings", func(t *testing.T) {
		t.Setenv("FARM_API_BASE_URL", "https://farm.example.com/api/v1")
		t.Setenv("FARM_API_TOKEN", "secret")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "https://farm.example.com/api/v1", cfg.FarmAPI.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.FarmAPI.Timeout)
		assert.Equal(t, "0 6 * * *", cfg.Snapshots.CronSchedule)
		assert.Equal(t, "America/Bogota", cfg.Snapshots.Timezone)
		assert.Equal(t, "ganaderia", cfg.MongoDB.DBName)
	})

	t.Run("Should fail without a farm API base URL", func(t *testing.T) {
		t.Setenv("FARM_API_BASE_URL", "")

		_, err := Load("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "FARM_API_BASE_URL")
	})

	t.Run("Should reject a non-numeric timeout", func(t *testing.T) {
		t.Setenv("FARM_API_BASE_URL", "https://farm.example.com")
		t.Setenv("FARM_API_TIMEOUT_SECONDS", "soon")

		_, err := Load("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "FARM_API_TIMEOUT_SECONDS")
	})
}
