package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiepolk/go-discord-catechism/internal/config"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  bot_token: "file-token"
  application_id: 123456789
  guild_ids:
    - "987654321"
catechism:
  file_path: "data/ccc.txt"
  command_prefix: "?"
  quote_cache_size: 64
  not_found_cache_size: 128
log_level: debug
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Discord.BotToken)
	require.NotNil(t, cfg.Discord.ApplicationID)
	assert.Equal(t, []string{"987654321"}, cfg.Discord.GuildIDs)
	assert.Equal(t, "data/ccc.txt", cfg.Catechism.FilePath)
	assert.Equal(t, "?", cfg.Catechism.CommandPrefix)
	assert.Equal(t, 64, cfg.Catechism.QuoteCacheSize)
	assert.Equal(t, 128, cfg.Catechism.NotFoundCacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  bot_token: "file-token"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "catechism.txt", cfg.Catechism.FilePath)
	assert.Equal(t, "!", cfg.Catechism.CommandPrefix)
	assert.Zero(t, cfg.Catechism.QuoteCacheSize)
}

func TestLoadConfigEnvTokenOverride(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  bot_token: "file-token"
`)

	t.Setenv("DISCORD_BOT_TOKEN", "env-token")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.BotToken)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "discord: [not a mapping")

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}
