package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("WAVES_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("WAVES_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WAVES_TEST_UNSET", "fallback"))

	t.Setenv("WAVES_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("WAVES_TEST_EMPTY", "fallback"))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("WAVES_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("WAVES_TEST_BOOL", false))

	t.Setenv("WAVES_TEST_BOOL", " 0 ")
	assert.False(t, GetEnvBool("WAVES_TEST_BOOL", true))

	t.Setenv("WAVES_TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("WAVES_TEST_BOOL", true))

	assert.False(t, GetEnvBool("WAVES_TEST_UNSET", false))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("WAVES_TEST_INT", "42")
	assert.Equal(t, int64(42), GetEnvInt("WAVES_TEST_INT", 7))

	t.Setenv("WAVES_TEST_INT", "forty")
	assert.Equal(t, int64(7), GetEnvInt("WAVES_TEST_INT", 7))

	assert.Equal(t, int64(-1), GetEnvInt("WAVES_TEST_UNSET", -1))
}

func TestGetEnvLevel(t *testing.T) {
	t.Setenv("WAVES_TEST_LEVEL", "debug")
	assert.Equal(t, slog.LevelDebug, GetEnvLevel("WAVES_TEST_LEVEL", slog.LevelInfo))

	t.Setenv("WAVES_TEST_LEVEL", "WARN")
	assert.Equal(t, slog.LevelWarn, GetEnvLevel("WAVES_TEST_LEVEL", slog.LevelInfo))

	t.Setenv("WAVES_TEST_LEVEL", "loud")
	assert.Equal(t, slog.LevelInfo, GetEnvLevel("WAVES_TEST_LEVEL", slog.LevelInfo))
}
