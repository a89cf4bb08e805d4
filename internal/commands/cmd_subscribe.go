package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/radxishan/digest/internal/core/logging"
	"github.com/radxishan/digest/internal/core/subscription"
	"github.com/radxishan/digest/internal/printer"
)

type SubscribeCmd struct {
	flags *Flags
	email string
	name  string
}

// NewSubscribeCmd creates a new subscribe command
func NewSubscribeCmd(flags *Flags) *SubscribeCmd {
	return &SubscribeCmd{flags: flags}
}

// Register adds the subscribe command to the application
func (cmd *SubscribeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "subscribe",
		Usage:     "Subscribe an email address to the digest",
		UsageText: "digest subscribe [--email EMAIL] [--name NAME]",
		Description: `Subscribes an email address to the daily AI news digest.

When --email is omitted and stdin is a terminal, an interactive form asks
for the name and email address.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "email address to subscribe",
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "subscriber name (optional)",
				Destination: &cmd.name,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SubscribeCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.email == "" && stdinIsTerminal() {
		if err := subscribeForm(&cmd.name, &cmd.email).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	form := subscription.NewSubscribeForm(cmd.flags.Client, p)
	form.Email = strings.TrimSpace(cmd.email)
	form.Name = strings.TrimSpace(cmd.name)

	state := form.Submit(logging.WithForm(ctx, "subscribe"))
	log.Debug().Stringer("outcome", state).Msg("subscribe")
	if state != subscription.StateSuccess {
		return ErrNotCompleted
	}
	return nil
}
