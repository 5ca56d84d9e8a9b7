package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "DATABASE_URL", "METRICS_PORT", "LOG_LEVEL", "AUTO_MIGRATE",
		"CORS_ALLOW_ORIGINS", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME"} {
		t.Setenv(k, "")
	}

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "10000", c.Port)
	assert.Equal(t, "development", c.Env)
	assert.True(t, c.IsDevelopment())
	assert.Equal(t, "", c.DatabaseURL)
	assert.Equal(t, "9090", c.MetricsPort)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.AutoMigrate)
	assert.Equal(t, []string{"*"}, c.CORSAllowOrigins)
	assert.Equal(t, 10, c.DBMaxOpenConns)
	assert.Equal(t, 5, c.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, c.DBConnMaxLifetime)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/inko")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

	c := Load()

	assert.Equal(t, "8081", c.Port)
	assert.False(t, c.IsDevelopment())
	assert.Equal(t, "postgres://u:p@db:5432/inko", c.DatabaseURL)
	assert.False(t, c.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSAllowOrigins)
	assert.Equal(t, 25, c.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, c.DBConnMaxLifetime)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "maybe")
	t.Setenv("DB_MAX_IDLE_CONNS", "-3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")
	t.Setenv("CORS_ALLOW_ORIGINS", " , ")

	c := Load()

	assert.True(t, c.AutoMigrate)
	assert.Equal(t, 5, c.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, c.DBConnMaxLifetime)
	assert.Equal(t, []string{"*"}, c.CORSAllowOrigins)
}

func TestInitDB_RequiresURL(t *testing.T) {
	_, err := InitDB(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
