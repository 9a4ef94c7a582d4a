package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
)

// PingCommand is a simple liveness check.
type PingCommand struct{}

// NewPingCommand creates a new PingCommand instance.
// This constructor will be used by Fx.
func NewPingCommand() Command {
	return &PingCommand{}
}

// Name returns the name of the command.
func (c *PingCommand) Name() string {
	return "ping"
}

// Description returns the description of the command.
func (c *PingCommand) Description() string {
	return "Test bot responsiveness"
}

// Options returns the command options.
func (c *PingCommand) Options() []discord.CommandOption {
	return nil // No options for this command
}

// Execute runs the command.
func (c *PingCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString("Pong! 🏓"),
		},
	})
}
