// Command promote grants the admin role to a user by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com
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
		Name:  "promote",
		Usage: "Grant the admin role to a user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "email of the user to promote",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			email := c.String("email")
			if err := app.Promote(ctx, email); err != nil {
				return err
			}
			fmt.Printf("User %q is an admin.\n", email)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("promote: %v", err)
	}
}
