package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthchat/hearth/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("HEARTH_DB_PATH", "")
	t.Setenv("HEARTH_MODEL", "")
	t.Setenv("HEARTH_DEBUG", "")

	cfg := config.Load()
	assert.Empty(t, cfg.AnthropicKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hearth.db", cfg.DBPath)
	assert.Empty(t, cfg.Model)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("HEARTH_DB_PATH", "/tmp/h.db")
	t.Setenv("HEARTH_MODEL", "claude-opus-4-1-20250805")
	t.Setenv("HEARTH_DEBUG", "true")

	cfg := config.Load()
	assert.Equal(t, "sk-test", cfg.AnthropicKey)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/tmp/h.db", cfg.DBPath)
	assert.Equal(t, "claude-opus-4-1-20250805", cfg.Model)
	assert.True(t, cfg.Debug)
}
