package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/catechism"
)

// Invocation is one typed command request: the parsed command token, its
// remaining argument string, and where it came from. It lives for the
// duration of a single dispatch.
type Invocation struct {
	Command   string
	Args      string
	ChannelID discord.ChannelID
	UserID    discord.UserID
}

// Reply is what a handler wants posted back to the invoking channel.
// Embed takes precedence over Content when both are set.
type Reply struct {
	Content string
	Embed   *discord.Embed
}

// HandlerFunc executes one prefix command invocation.
type HandlerFunc func(ctx context.Context, inv Invocation) Reply

// Dispatcher routes typed chat commands by exact name. Messages that do
// not begin with the prefix are never acted on; unknown commands get the
// help text.
type Dispatcher struct {
	prefix   string
	quotes   *catechism.Service
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher with the built-in command set:
// catechism, ping, and help.
func NewDispatcher(prefix string, quotes *catechism.Service, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		prefix: prefix,
		quotes: quotes,
		logger: logger.Named("dispatcher"),
	}

	d.handlers = map[string]HandlerFunc{
		"catechism": d.handleCatechism,
		"ping":      d.handlePing,
		"help":      d.handleHelp,
	}

	return d
}

// Dispatch parses and routes one message. The boolean reports whether the
// message was addressed to the dispatcher at all.
func (d *Dispatcher) Dispatch(ctx context.Context, content string, channelID discord.ChannelID, userID discord.UserID) (Reply, bool) {
	if d.prefix == "" || !strings.HasPrefix(content, d.prefix) {
		return Reply{}, false
	}

	rest := strings.TrimPrefix(content, d.prefix)
	name, args, _ := strings.Cut(rest, " ")
	name = strings.ToLower(strings.TrimSpace(name))
	args = strings.TrimSpace(args)

	if name == "" {
		// A bare prefix is not a command.
		return Reply{}, false
	}

	inv := Invocation{
		Command:   name,
		Args:      args,
		ChannelID: channelID,
		UserID:    userID,
	}

	handler, ok := d.handlers[name]
	if !ok {
		d.logger.Debug("Unknown prefix command", zap.String("command", name))

		return d.helpReply(), true
	}

	d.logger.Info("Dispatching prefix command",
		zap.String("command", name),
		zap.Stringer("channelID", channelID),
		zap.Stringer("userID", userID),
	)

	return handler(ctx, inv), true
}

// handleCatechism looks up a paragraph by number.
func (d *Dispatcher) handleCatechism(ctx context.Context, inv Invocation) Reply {
	number, err := strconv.Atoi(inv.Args)
	if err != nil {
		return Reply{Content: fmt.Sprintf("Usage: %scatechism <paragraph number>", d.prefix)}
	}

	text, err := d.quotes.Lookup(number)
	if err != nil {
		return Reply{Content: catechism.NotFoundMessage(inv.Args)}
	}

	embed := catechism.NewQuoteEmbed(number, text)

	return Reply{Embed: &embed}
}

// InlineQuote resolves an inline CCC mention to the reply to post. The
// reference arrives as the raw digit string; digits too large for an int
// can never be a paragraph number and get the same not-found reply a
// missing paragraph does.
func (d *Dispatcher) InlineQuote(ref string) Reply {
	number, err := strconv.Atoi(ref)
	if err != nil {
		return Reply{Content: catechism.NotFoundMessage(ref)}
	}

	text, err := d.quotes.Lookup(number)
	if err != nil {
		return Reply{Content: catechism.NotFoundMessage(ref)}
	}

	embed := catechism.NewQuoteEmbed(number, text)

	return Reply{Embed: &embed}
}

func (d *Dispatcher) handlePing(ctx context.Context, inv Invocation) Reply {
	return Reply{Content: "Pong! 🏓"}
}

func (d *Dispatcher) handleHelp(ctx context.Context, inv Invocation) Reply {
	return d.helpReply()
}

func (d *Dispatcher) helpReply() Reply {
	return Reply{Content: fmt.Sprintf(
		"Commands: %[1]scatechism <paragraph>, %[1]sping, %[1]shelp. You can also mention `CCC <paragraph>` anywhere in a message.",
		d.prefix,
	)}
}
