package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8084", cfg.Port)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.RejectEmptyBills)
	assert.Len(t, cfg.Brokers(), 3)
	assert.Len(t, cfg.DSNs(), 1)
	assert.Equal(t, 2*time.Second, cfg.PublishTimeout)
	assert.Equal(t, int64(0), cfg.NodeID)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DSNS", "a/db0, b/db1 ,")
	t.Setenv("REJECT_EMPTY_BILLS", "true")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"a/db0", "b/db1"}, cfg.DSNs())
	assert.True(t, cfg.RejectEmptyBills)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("RATE_BURST", "lots")

	_, err := Load()
	assert.Error(t, err)
}
