package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "gobarber")
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_BAD_INT", "forty-two")
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_DURATION", "1m30s")
	t.Setenv("TEST_ENV_EMPTY", "")

	assert.Equal(t, "gobarber", GetEnvString("TEST_ENV_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_ENV_EMPTY", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_ENV_MISSING", "default"))
	assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 7))
	assert.Equal(t, 7, GetEnvInt("TEST_ENV_BAD_INT", 7))
	assert.True(t, GetEnvBool("TEST_ENV_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_ENV_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("TEST_ENV_EMPTY", time.Second))
}
