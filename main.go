// Package main provides the entry point for the Catechism Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/louiepolk/go-discord-catechism/internal/app"
	"github.com/louiepolk/go-discord-catechism/internal/bot"
	"github.com/louiepolk/go-discord-catechism/internal/catechism"
	"github.com/louiepolk/go-discord-catechism/internal/commands"
	"github.com/louiepolk/go-discord-catechism/internal/config"
	"github.com/louiepolk/go-discord-catechism/internal/discord"
	"github.com/louiepolk/go-discord-catechism/internal/infrastructure"
	pkginfra "github.com/louiepolk/go-discord-catechism/pkg/infrastructure"

	"go.uber.org/fx"
)

func main() {
	// Default config path; DISCORD_BOT_TOKEN in the environment overrides
	// the token inside it.
	configPath := "config.yaml"

	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,

		// Application modules
		catechism.Module,
		commands.Module,
		bot.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Route Fx's own internal logging through our Zap logger
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go application.Run()

	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Give the application 30 seconds to shut down gracefully.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	err := application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
