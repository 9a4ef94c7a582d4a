package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/catechism"
)

// CatechismCommand handles the /catechism command: it looks up a paragraph
// of the Catechism by number and replies with a quote embed.
type CatechismCommand struct {
	logger  *zap.Logger
	service *catechism.Service
}

// NewCatechismCommand creates a new CatechismCommand.
func NewCatechismCommand(logger *zap.Logger, service *catechism.Service) Command {
	return &CatechismCommand{
		logger:  logger.Named("catechism_command"),
		service: service,
	}
}

// Name returns the name of the command.
func (c *CatechismCommand) Name() string {
	return "catechism"
}

// Description returns the description of the command.
func (c *CatechismCommand) Description() string {
	return "Quotes a paragraph of the Catechism of the Catholic Church."
}

// Options returns the command options for the /catechism command.
func (c *CatechismCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.IntegerOption{
			OptionName:  "paragraph",
			Description: "Paragraph number to quote",
			Required:    true,
			Min:         option.NewInt(1),
		},
	}
}

// Execute runs the command.
func (c *CatechismCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	opt := data.Options.Find("paragraph")

	number, err := opt.IntValue()
	if err != nil {
		c.logger.Warn("Malformed paragraph option", zap.Error(err))

		return c.respondEphemeral(s, e, "Please provide a valid paragraph number, e.g. `/catechism paragraph:1`.")
	}

	text, err := c.service.Lookup(int(number))
	if err != nil {
		if errors.Is(err, catechism.ErrNotFound) {
			return c.respondEphemeral(s, e, catechism.NotFoundMessage(strconv.FormatInt(number, 10)))
		}

		return fmt.Errorf("catechism lookup failed: %w", err)
	}

	embed := catechism.NewQuoteEmbed(int(number), text)

	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{embed},
		},
	})
}

// respondEphemeral sends a reply only the invoking user can see.
func (c *CatechismCommand) respondEphemeral(s *session.Session, e *gateway.InteractionCreateEvent, msg string) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(msg),
			Flags:   discord.EphemeralMessage,
		},
	})
}
