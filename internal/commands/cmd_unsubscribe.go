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

type UnsubscribeCmd struct {
	flags *Flags
	email string
}

// NewUnsubscribeCmd creates a new unsubscribe command
func NewUnsubscribeCmd(flags *Flags) *UnsubscribeCmd {
	return &UnsubscribeCmd{flags: flags}
}

// Register adds the unsubscribe command to the application
func (cmd *UnsubscribeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "unsubscribe",
		Usage:     "Remove an email address from the digest",
		UsageText: "digest unsubscribe [--email EMAIL]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "email address to unsubscribe",
				Destination: &cmd.email,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *UnsubscribeCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.email == "" && stdinIsTerminal() {
		confirm := true
		if err := unsubscribeForm(&cmd.email, &confirm).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
		if !confirm {
			p.Infof("Cancelled")
			return nil
		}
	}

	form := subscription.NewUnsubscribeForm(cmd.flags.Client, p)
	form.Email = strings.TrimSpace(cmd.email)

	state := form.Submit(logging.WithForm(ctx, "unsubscribe"))
	log.Debug().Stringer("outcome", state).Msg("unsubscribe")
	if state != subscription.StateSuccess {
		return ErrNotCompleted
	}
	return nil
}
