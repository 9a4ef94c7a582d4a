package bot

import (
	"context"
	"errors"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/state"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/catechism"
	"github.com/louiepolk/go-discord-catechism/internal/commands"
	"github.com/louiepolk/go-discord-catechism/internal/config"
)

// Bot wires the Discord gateway events to the command surfaces: slash
// command interactions, typed prefix commands, and inline CCC mentions.
type Bot struct {
	session    *session.Session
	state      *state.State
	config     *config.Config
	cmdManager *commands.CommandManager
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Cfg        *config.Config
	Session    *session.Session
	State      *state.State
	CmdManager *commands.CommandManager
	Quotes     *catechism.Service
	Logger     *zap.Logger
}

// NewBot creates a new Bot and attaches its gateway handlers.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.Session == nil {
		return nil, errors.New("session provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, errors.New("config provided to NewBot is nil")
	}
	if params.CmdManager == nil {
		return nil, errors.New("command manager provided to NewBot is nil")
	}
	if params.Logger == nil {
		return nil, errors.New("logger provided to NewBot is nil")
	}

	b := &Bot{
		session:    params.Session,
		state:      params.State,
		config:     params.Cfg,
		cmdManager: params.CmdManager,
		dispatcher: NewDispatcher(params.Cfg.Catechism.CommandPrefix, params.Quotes, params.Logger),
		logger:     params.Logger.Named("bot"),
	}

	params.Session.AddHandler(func(e *gateway.InteractionCreateEvent) {
		b.handleInteraction(context.Background(), e)
	})
	params.Session.AddHandler(func(e *gateway.MessageCreateEvent) {
		b.handleMessage(context.Background(), e)
	})

	b.logger.Info("Bot created successfully")

	return b, nil
}

// Start registers the slash commands with the configured guilds. Session
// opening is handled by the Fx lifecycle.
func (b *Bot) Start(ctx context.Context) error {
	guildIDs := b.guildIDs()
	if len(guildIDs) == 0 {
		b.logger.Warn("No guild IDs configured; slash commands will not be registered")

		return nil
	}

	b.cmdManager.RegisterCommands(guildIDs)
	b.logger.Info("Slash commands registration process initiated for configured guilds")

	return nil
}

// Stop unregisters the slash commands. Session closing is handled by the
// Fx lifecycle.
func (b *Bot) Stop(ctx context.Context) error {
	guildIDs := b.guildIDs()
	if len(guildIDs) > 0 {
		b.cmdManager.UnregisterAllCommands(guildIDs)
	}

	return nil
}

// guildIDs converts the configured guild ID strings to snowflakes,
// skipping invalid entries.
func (b *Bot) guildIDs() []discord.GuildID {
	guildIDs := make([]discord.GuildID, 0, len(b.config.Discord.GuildIDs))
	for _, idStr := range b.config.Discord.GuildIDs {
		sf, err := discord.ParseSnowflake(idStr)
		if err != nil {
			b.logger.Error("Failed to parse guild ID string to Snowflake",
				zap.String("guildIDStr", idStr), zap.Error(err))

			continue
		}
		guildIDs = append(guildIDs, discord.GuildID(sf))
	}

	return guildIDs
}
