package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
)

// AppVersion identifies the running build. Stamp it at build time with
// -ldflags "-X .../internal/commands.AppVersion=v1.2.3"; it stays "dev"
// for local builds.
var AppVersion = "dev"

// VersionCommand reports which build of the bot is answering, which is the
// quickest way to confirm a redeploy actually took.
type VersionCommand struct{}

// NewVersionCommand creates the /version command.
func NewVersionCommand() Command {
	return &VersionCommand{}
}

func (c *VersionCommand) Name() string {
	return "version"
}

func (c *VersionCommand) Description() string {
	return "Shows which build of the Catechism bot is running."
}

func (c *VersionCommand) Options() []discord.CommandOption {
	return nil
}

// Execute replies with the stamped build version.
func (c *VersionCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString("Catechism Bot " + AppVersion),
		},
	})
}
