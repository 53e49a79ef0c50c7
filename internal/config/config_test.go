package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "contacts", cfg.DefaultBook)
	assert.Equal(t, 10, cfg.PageSize)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestValidate_RepairsBadValues(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/rolodex", PageSize: -3}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "contacts", cfg.DefaultBook)
}

func TestValidate_MissingDataDir(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}
