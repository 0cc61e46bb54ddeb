package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123, 456 ,")
	t.Setenv("ALLOWED_HOSTS", "example.uz,www.example.uz")
	t.Setenv("STRICT_POSITION_CODES", "false")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, []string{"-100123", "456"}, cfg.Telegram.ChatIDs)
	assert.Equal(t, []string{"example.uz", "www.example.uz"}, cfg.AllowedHosts)
	assert.False(t, cfg.StrictPositionCodes)
	assert.True(t, cfg.Admin.Enabled())
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "TIME_ZONE", "TELEGRAM_CHAT_ID", "TELEGRAM_TEXT_TIMEOUT_SEC", "TELEGRAM_DOCUMENT_TIMEOUT_SEC",
		"STRICT_POSITION_CODES", "BODY_LIMIT_MB", "ALLOWED_HOSTS", "MINIO_ENDPOINT", "ADMIN_USERNAME", "MEDIA_URL",
		"FORMS_RATE_PER_MINUTE", "FORMS_RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Tashkent", cfg.TimeZone)
	assert.Nil(t, cfg.Telegram.ChatIDs)
	assert.Equal(t, 10, cfg.Telegram.TextTimeoutSec)
	assert.Equal(t, 20, cfg.Telegram.DocumentTimeoutSec)
	assert.True(t, cfg.StrictPositionCodes)
	assert.Equal(t, 8, cfg.BodyLimitMB)
	assert.Equal(t, 6, cfg.FormsRatePerMinute)
	assert.Equal(t, 3, cfg.FormsRateBurst)
	assert.Equal(t, []string{"*"}, cfg.AllowedHosts)
	assert.False(t, cfg.MinIO.Enabled())
	assert.False(t, cfg.Admin.Enabled())
	assert.Equal(t, "/media/", cfg.Media.URL)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	t.Setenv(key, " a ,b,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvList(key, nil))

	t.Setenv(key, " , ")
	assert.Equal(t, []string{"x"}, getEnvList(key, []string{"x"}))
}
