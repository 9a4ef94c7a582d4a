package commands_test

import (
	"context"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/commands"
)

// fakeCommand is a minimal Command implementation for manager tests.
type fakeCommand struct {
	name string
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake command" }

func (f *fakeCommand) Options() []discord.CommandOption { return nil }

func (f *fakeCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	return nil
}

func TestNewCommandManager(t *testing.T) {
	appID := discord.AppID(12345)

	t.Run("SuccessWithUniqueCommands", func(t *testing.T) {
		ping := &fakeCommand{name: "ping"}
		catechism := &fakeCommand{name: "catechism"}

		params := commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{ping, catechism},
		}

		cm := commands.NewCommandManager(params)
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("ping")
		assert.True(t, ok)
		assert.Equal(t, ping, got)

		got, ok = cm.GetCommand("catechism")
		assert.True(t, ok)
		assert.Equal(t, catechism, got)

		_, ok = cm.GetCommand("nonexistent")
		assert.False(t, ok)
	})

	t.Run("NoCommands", func(t *testing.T) {
		params := commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{},
		}

		cm := commands.NewCommandManager(params)
		require.NotNil(t, cm)

		_, ok := cm.GetCommand("any")
		assert.False(t, ok)
	})

	t.Run("NilCommandInSlice", func(t *testing.T) {
		valid := &fakeCommand{name: "valid"}

		params := commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{nil, valid, nil},
		}

		cm := commands.NewCommandManager(params)
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("valid")
		assert.True(t, ok)
		assert.Equal(t, valid, got)
	})

	t.Run("DuplicateCommandNames", func(t *testing.T) {
		first := &fakeCommand{name: "dup"}
		second := &fakeCommand{name: "dup"}

		params := commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{first, second},
		}

		cm := commands.NewCommandManager(params)
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("dup")
		assert.True(t, ok)
		assert.Same(t, first, got) // first registration wins
	})

	t.Run("NilLogger", func(t *testing.T) {
		cmd := &fakeCommand{name: "testlog"}

		params := commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        nil, // Should default to zap.NewNop()
			Commands:      []commands.Command{cmd},
		}

		cm := commands.NewCommandManager(params)
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("testlog")
		assert.True(t, ok)
		assert.Equal(t, cmd, got)
	})
}
