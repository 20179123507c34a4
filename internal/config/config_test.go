package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"BOOKSHOP_DATA_DIR", "BOOKSHOP_LOGIN_DELAY", "BOOKSHOP_FEATURED_COUNT"} {
		// t.Setenv restores the caller's value; Unsetenv clears it for
		// the test so ambient settings cannot leak in.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 800*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, 4, cfg.FeaturedCount)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOOKSHOP_DATA_DIR", "/tmp/shop")
	t.Setenv("BOOKSHOP_LOGIN_DELAY", "10ms")
	t.Setenv("BOOKSHOP_FEATURED_COUNT", "2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/shop", cfg.DataDir)
	assert.Equal(t, 10*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, 2, cfg.FeaturedCount)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("BOOKSHOP_LOGIN_DELAY", "soon")

	_, err := Load()

	assert.Error(t, err)
}
