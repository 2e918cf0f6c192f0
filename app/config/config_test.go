package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without admin secret", func(t *testing.T) {
		t.Setenv("ADMIN_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ADMIN_SECRET", "top-secret")
		t.Setenv("QUILLPRESS_ADDR", "")
		t.Setenv("QUILLPRESS_DB", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":4000", cfg.Addr)
		assert.Equal(t, "data/badger", cfg.DBPath)
		assert.Equal(t, "top-secret", cfg.AdminSecret)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ADMIN_SECRET", "top-secret")
		t.Setenv("QUILLPRESS_ADDR", ":9999")
		t.Setenv("QUILLPRESS_DB", "/tmp/blogdb")
		t.Setenv("CLIPDROP_API_KEY", "cd-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, "/tmp/blogdb", cfg.DBPath)
		assert.Equal(t, "cd-key", cfg.ClipdropAPIKey)
	})
}
