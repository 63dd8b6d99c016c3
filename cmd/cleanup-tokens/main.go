// Command cleanup-tokens deletes used and expired password reset tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Requires DATABASE_DSN (or a config file with database.dsn).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ecoideias/ecoideias-backend/internal/app"
)

func main() {
	cmd := &cli.Command{
		Name:  "cleanup-tokens",
		Usage: "Delete used and expired password reset tokens",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abort after this long",
				Value: 30 * time.Second,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, c.Duration("timeout"))
			defer cancel()

			n, err := app.CleanupTokens(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d reset tokens.\n", n)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("cleanup-tokens: %v", err)
	}
}
