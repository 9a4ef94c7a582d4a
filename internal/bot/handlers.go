// Package bot provides the gateway event handlers and their Fx module.
package bot

import (
	"context"
	"regexp"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"
)

// quoteRequestPattern matches inline Catechism mentions like "CCC 1234" or
// "ccc.25" anywhere in a message.
var quoteRequestPattern = regexp.MustCompile(`(?i)ccc\.?\s*(\d+)`)

// matchQuoteRequest extracts the paragraph reference of an inline CCC
// mention as the raw digit string. The boolean is false when the message
// contains no mention.
func matchQuoteRequest(content string) (string, bool) {
	m := quoteRequestPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// handleInteraction routes slash command interactions to the command manager.
func (b *Bot) handleInteraction(ctx context.Context, e *gateway.InteractionCreateEvent) {
	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		b.logger.Info("Received slash command",
			zap.String("commandName", data.Name),
			zap.Stringer("senderID", e.SenderID()),
		)

		cmd, ok := b.cmdManager.GetCommand(data.Name)
		if !ok {
			b.logger.Warn("Unknown command", zap.String("commandName", data.Name))
			err := b.session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
				Type: api.MessageInteractionWithSource,
				Data: &api.InteractionResponseData{
					Content: option.NewNullableString("Command not found."),
				},
			})
			if err != nil {
				b.logger.Error("Failed to respond to interaction for unknown command", zap.Error(err))
			}

			return
		}

		if err := cmd.Execute(ctx, b.session, e, data); err != nil {
			b.logger.Error("Error executing command",
				zap.String("commandName", data.Name), zap.Error(err))
			errResp := b.session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
				Type: api.MessageInteractionWithSource,
				Data: &api.InteractionResponseData{
					Content: option.NewNullableString("An error occurred while executing the command."),
				},
			})
			if errResp != nil {
				b.logger.Error("Failed to send error response for command execution", zap.Error(errResp))
			}

			return
		}

		b.logger.Info("Command executed successfully", zap.String("commandName", data.Name))

	default:
		b.logger.Debug("Received unhandled interaction type", zap.Any("type", e.Data))
	}
}

// handleMessage runs plain channel messages through the prefix dispatcher
// first and falls back to the inline CCC scan.
func (b *Bot) handleMessage(ctx context.Context, e *gateway.MessageCreateEvent) {
	if e.Author.Bot {
		return
	}
	if me, err := b.state.Me(); err == nil && e.Author.ID == me.ID {
		return
	}

	if reply, ok := b.dispatcher.Dispatch(ctx, e.Content, e.ChannelID, e.Author.ID); ok {
		b.sendReply(e.ChannelID, reply)

		return
	}

	ref, ok := matchQuoteRequest(e.Content)
	if !ok {
		return
	}

	b.logger.Info("Detected inline CCC quote request",
		zap.String("paragraph", ref),
		zap.Stringer("channelID", e.ChannelID),
		zap.Stringer("userID", e.Author.ID),
	)

	b.sendReply(e.ChannelID, b.dispatcher.InlineQuote(ref))
}

// sendReply posts a handler reply to the channel, logging send failures.
func (b *Bot) sendReply(channelID discord.ChannelID, reply Reply) {
	var err error

	switch {
	case reply.Embed != nil:
		_, err = b.session.SendEmbeds(channelID, *reply.Embed)
	case reply.Content != "":
		_, err = b.session.SendMessage(channelID, reply.Content)
	default:
		return
	}

	if err != nil {
		b.logger.Error("Failed to send reply", zap.Stringer("channelID", channelID), zap.Error(err))
	}
}
