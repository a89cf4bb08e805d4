package commands

import (
	"context"
	"fmt"
	"net"
	"net/url"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/radxishan/digest/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the newsletter landing page",
		UsageText: "digest tui",
		Action:    cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(_ context.Context, _ *cli.Command) error {
	deps := tui.Deps{
		API:    cmd.flags.Client,
		Config: cmd.flags.Config,
	}
	opts := tui.Opts{
		Warnings: startupWarnings(cmd.flags.Config.BaseURL),
	}

	log.Info().Str("base_url", cmd.flags.Client.BaseURL()).Msg("starting landing page")

	p := tea.NewProgram(tui.New(deps, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// startupWarnings flags configurations that work but deserve a second look.
func startupWarnings(baseURL string) []string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme != "http" {
		return nil
	}

	host := u.Hostname()
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return []string{fmt.Sprintf("Connecting to %s over plain HTTP", host)}
}
