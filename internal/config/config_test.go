package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: DATABASE_URLが最優先
func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shop")
	t.Setenv("POSTGRES_HOST", "ignored")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.DatabaseDSN)
}

// Test: DATABASE_URLが無ければPOSTGRES_*から組み立てる
func TestLoad_DSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "dbhost")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "shopdb")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t,
		"host=dbhost port=5433 user=shop password=secret dbname=shopdb sslmode=require",
		cfg.DatabaseDSN,
	)
}

// Test: 管理者クレデンシャルのデフォルト
func TestLoad_AdminDefaults(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := Load()
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin@123", cfg.AdminPassword)
}
