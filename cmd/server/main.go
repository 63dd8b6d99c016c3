// Command server runs the Eco Ideias HTTP API and its maintenance tasks.
//
// Usage:
//
//	server serve
//	server migrate up|down|status
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ecoideias/ecoideias-backend/internal/app"
)

func main() {
	if err := run(); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cmd := &cli.Command{
		Name:    "server",
		Usage:   "Eco Ideias backend",
		Version: app.BuildVersion(),
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, _ *cli.Command) error {
					ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					return app.Run(ctx)
				},
			},
			{
				Name:  "migrate",
				Usage: "Manage database migrations",
				Commands: []*cli.Command{
					migrateCommand("up", "Apply all pending migrations"),
					migrateCommand("down", "Roll back the latest migration"),
					migrateCommand("status", "Print the state of every migration"),
				},
			},
		},
		DefaultCommand: "serve",
	}

	return cmd.Run(context.Background(), os.Args)
}

func migrateCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := app.Migrate(ctx, name, os.Stdout); err != nil {
				return fmt.Errorf("migrate %s: %w", name, err)
			}
			return nil
		},
	}
}
