package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/radxishan/digest/internal/printer"
	"github.com/radxishan/digest/pkg/iojson"
)

type CountCmd struct {
	flags      *Flags
	jsonOutput bool
}

// NewCountCmd creates a new count command
func NewCountCmd(flags *Flags) *CountCmd {
	return &CountCmd{flags: flags}
}

// Register adds the count command to the application
func (cmd *CountCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "count",
		Usage:     "Print the number of subscribers",
		UsageText: "digest count [--json]",
		Description: `Prints the current subscriber count. An unreachable backend counts as 0,
so the command always succeeds.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type countOutput struct {
	Count int `json:"count"`
}

func (cmd *CountCmd) run(ctx context.Context, c *cli.Command) error {
	count := cmd.flags.Client.SubscriberCount(ctx)

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, countOutput{Count: count})
	}

	printer.Ctx(ctx).Printf("%d", count)
	return nil
}
