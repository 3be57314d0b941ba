package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("GOOGLE_CLIENT_ID", "cid")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, "cid", cfg.GoogleClientID)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "h", DBPort: "5432", DBUser: "u", DBPassword: "p",
		DBName: "d", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=h user=u password=p dbname=d port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
