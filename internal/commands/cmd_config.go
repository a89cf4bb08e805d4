package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/radxishan/digest/internal/printer"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "config",
		Usage:     "Print the effective configuration",
		UsageText: "digest config",
		Description: `Prints the configuration after merging the config file, .env, environment
variables and flags, then validates it.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ConfigCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	out, err := yaml.Marshal(cmd.flags.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if _, err := c.Root().Writer.Write(out); err != nil {
		return err
	}

	p.Printf("")
	if err := cmd.flags.Config.Validate(); err != nil {
		p.Errorf("%v", err)
		return ErrNotCompleted
	}

	p.Successf("Configuration is valid (%s)", cmd.flags.ConfigPath)
	return nil
}
