package config

import (
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"gopkg.in/yaml.v3"
)

// tokenEnvVar overrides the bot token from the config file when set.
const tokenEnvVar = "DISCORD_BOT_TOKEN"

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	BotToken      string             `yaml:"bot_token"`
	ApplicationID *discord.Snowflake `yaml:"application_id"`
	GuildIDs      []string           `yaml:"guild_ids"`
}

// CatechismConfig stores the catechism dataset and lookup configurations.
type CatechismConfig struct {
	// FilePath points at the bundled plain-text Catechism. Defaults to
	// "catechism.txt" next to the binary.
	FilePath string `yaml:"file_path"`
	// CommandPrefix is the leading token for typed chat commands. Defaults to "!".
	CommandPrefix string `yaml:"command_prefix"`
	// QuoteCacheSize bounds the LRU cache of cleaned paragraphs.
	QuoteCacheSize int `yaml:"quote_cache_size"`
	// NotFoundCacheSize bounds the negative cache of missing paragraph numbers.
	NotFoundCacheSize int `yaml:"not_found_cache_size"`
}

// Config stores the application configuration.
type Config struct {
	Discord   DiscordConfig   `yaml:"discord"`
	Catechism CatechismConfig `yaml:"catechism"`
	LogLevel  string          `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path.
// DISCORD_BOT_TOKEN in the environment takes precedence over the file's
// bot_token, so the secret never has to live on disk.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	if token := os.Getenv(tokenEnvVar); token != "" {
		cfg.Discord.BotToken = token
	}

	if cfg.Catechism.FilePath == "" {
		cfg.Catechism.FilePath = "catechism.txt"
	}
	if cfg.Catechism.CommandPrefix == "" {
		cfg.Catechism.CommandPrefix = "!"
	}

	return &cfg, nil
}
