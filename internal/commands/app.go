package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/radxishan/digest/internal/core/config"
	"github.com/radxishan/digest/internal/core/logging"
	"github.com/radxishan/digest/internal/core/styles"
	"github.com/radxishan/digest/internal/integration/digestapi"
	"github.com/radxishan/digest/internal/printer"
	"github.com/radxishan/digest/pkg/logutils"
)

// configCommandName is the one command that runs with an invalid
// configuration, so it can print and report it.
const configCommandName = "config"

// NewApp builds the root command with every subcommand registered. The TUI is
// the default action.
func NewApp(version string) *cli.Command {
	var logCloser func()

	flags := &Flags{}

	app := &cli.Command{
		Name:      "digest",
		Usage:     "Subscribe to the AI News Digest from your terminal",
		UsageText: "digest [global options] command [command options]",
		Description: `digest is a terminal client for the AI News Digest newsletter.

Run 'digest' with no arguments to open the interactive landing page.
Run 'digest subscribe --email you@example.com' to subscribe from a script.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DIGEST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("DIGEST_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DIGEST_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Usage:       "newsletter API address (overrides config and DIGEST_BASE_URL)",
				Destination: &flags.BaseURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The TUI owns the terminal, so logs always go to a file
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			if err := config.LoadDotEnv(".env"); err != nil {
				return ctx, fmt.Errorf("load .env: %w", err)
			}

			cfg, err := config.LoadUnvalidated(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.BaseURL != "" {
				cfg.BaseURL = flags.BaseURL
			}

			// `digest config` reports validation errors itself
			if c.Args().First() != configCommandName {
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid config: %w", err)
				}
			}

			if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
				styles.SetTheme(palette)
			}

			flags.Config = cfg
			flags.Client = digestapi.New(
				cfg.BaseURL,
				nil,
				cfg.HTTP.Timeout,
				logging.Component("digestapi"),
			)

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("base_url", cfg.BaseURL).
				Dur("timeout", cfg.HTTP.Timeout).
				Msg("configuration loaded")

			return printer.NewContext(ctx, printer.New(c.Root().Writer, c.Root().ErrWriter)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = tuiCmd.Register(app)
	app = NewSubscribeCmd(flags).Register(app)
	app = NewUnsubscribeCmd(flags).Register(app)
	app = NewCountCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'digest --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
