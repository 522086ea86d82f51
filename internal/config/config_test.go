package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the variables after the test.
		t.Setenv("APP_ENV", "test")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("CATALOG_SOURCE", "postgres")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("CATALOG_CACHE_TTL", "10m")
		t.Setenv("CATALOG_CACHE_SIZE", "64")
		t.Setenv("WHATSAPP_NUMBER", "919000000000")
		t.Setenv("ALLOWED_ORIGINS", "https://shop.example, http://localhost:3000")
		t.Setenv("ADMIN_JWT_SECRET", "jwt-secret")
		t.Setenv("REVALIDATION_SECRET", "reval")
		t.Setenv("STORE_URL", "https://shop.example/")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, SourcePostgres, cfg.CatalogSource)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL)
		assert.Equal(t, 64, cfg.CatalogCacheSize)
		assert.Equal(t, "919000000000", cfg.WhatsAppNumber)
		assert.Equal(t, []string{"https://shop.example", "http://localhost:3000"}, cfg.AllowedOrigins)
		assert.Equal(t, "jwt-secret", cfg.AdminJWTSecret)
		assert.Equal(t, "reval", cfg.RevalidationSecret)
		assert.Equal(t, "https://shop.example", cfg.StoreURL)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "")
		t.Setenv("WHATSAPP_NUMBER", "")
		t.Setenv("STORE_LANG", "")
		t.Setenv("CATALOG_CACHE_TTL", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, SourceJSON, cfg.CatalogSource)
		assert.Equal(t, DefaultWhatsAppNumber, cfg.WhatsAppNumber)
		assert.Equal(t, DefaultStoreLang, cfg.StoreLang)
		assert.Equal(t, 24*time.Hour, cfg.CatalogCacheTTL)
	})

	t.Run("Bad duration", func(t *testing.T) {
		t.Setenv("CATALOG_CACHE_TTL", "forever")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Postgres without DB settings", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "postgres")
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "DB_HOST")
	})

	t.Run("Unknown source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "mongo")

		_, err := Load()
		assert.ErrorContains(t, err, `unknown CATALOG_SOURCE "mongo"`)
	})
}
