package commands

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CommandManagerParams holds dependencies for NewCommandManager.
type CommandManagerParams struct {
	fx.In

	Session       *session.Session
	ApplicationID discord.AppID
	Logger        *zap.Logger
	Commands      []Command `group:"commands"`
}

// CommandManager handles registration and lookup of slash commands.
type CommandManager struct {
	session       *session.Session
	applicationID discord.AppID
	logger        *zap.Logger
	commands      map[string]Command
}

// NewCommandManager creates a new CommandManager from the command group.
// Duplicate command names keep the first registration; nil entries are skipped.
func NewCommandManager(params CommandManagerParams) *CommandManager {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	commands := make(map[string]Command, len(params.Commands))
	for _, cmd := range params.Commands {
		if cmd == nil {
			continue
		}
		if _, exists := commands[cmd.Name()]; exists {
			logger.Warn("Duplicate command name, keeping the first registration",
				zap.String("commandName", cmd.Name()))

			continue
		}
		commands[cmd.Name()] = cmd
	}

	logger.Info("Creating new CommandManager", zap.Int("commandCount", len(commands)))

	return &CommandManager{
		session:       params.Session,
		applicationID: params.ApplicationID,
		logger:        logger,
		commands:      commands,
	}
}

// GetCommand retrieves a registered command by its name.
func (cm *CommandManager) GetCommand(name string) (Command, bool) {
	cmd, ok := cm.commands[name]

	return cmd, ok
}

// RegisterCommands registers all loaded commands with Discord for the specified guilds.
func (cm *CommandManager) RegisterCommands(guildIDs []discord.GuildID) {
	cm.logger.Info("Registering slash commands with Discord for specified guilds...")

	cmds := make([]api.CreateCommandData, 0, len(cm.commands))
	for _, cmd := range cm.commands {
		cmds = append(cmds, api.CreateCommandData{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		})
		cm.logger.Debug("Preparing to register command", zap.String("commandName", cmd.Name()))
	}

	if len(cmds) == 0 {
		cm.logger.Info("No commands to register.")

		return
	}

	for _, guildID := range guildIDs {
		registered, err := cm.session.BulkOverwriteGuildCommands(cm.applicationID, guildID, cmds)
		if err != nil {
			cm.logger.Error("Failed to bulk overwrite commands for guild",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
				zap.Stringer("guildID", guildID),
			)

			continue
		}
		cm.logger.Info("Successfully registered slash commands for guild",
			zap.Int("count", len(registered)),
			zap.Stringer("applicationID", cm.applicationID),
			zap.Stringer("guildID", guildID),
		)
	}
}

// UnregisterAllCommands unregisters all commands for the specified guilds.
func (cm *CommandManager) UnregisterAllCommands(guildIDs []discord.GuildID) {
	cm.logger.Info("Unregistering all slash commands for specified guilds...",
		zap.Stringer("applicationID", cm.applicationID))

	for _, guildID := range guildIDs {
		_, err := cm.session.BulkOverwriteGuildCommands(cm.applicationID, guildID, []api.CreateCommandData{})
		if err != nil {
			cm.logger.Error("Failed to unregister commands for guild",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
				zap.Stringer("guildID", guildID),
			)

			continue
		}
		cm.logger.Info("Successfully requested to unregister all slash commands for guild",
			zap.Stringer("applicationID", cm.applicationID),
			zap.Stringer("guildID", guildID),
		)
	}
}
