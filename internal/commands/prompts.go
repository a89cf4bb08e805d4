package commands

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/radxishan/digest/internal/core/subscription"
)

// stdinIsTerminal reports whether prompts can be shown.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ErrNotCompleted signals a failure whose reason has already been printed,
// such as a rejected submission.
var ErrNotCompleted = errors.New("request not completed")

func validateEmail(s string) error {
	return subscription.ValidateEmail(strings.TrimSpace(s))
}

func subscribeForm(name, email *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Optional").
				Placeholder("Your name").
				Value(name),
			huh.NewInput().
				Title("Email Address").
				Placeholder("your@email.com").
				Validate(validateEmail).
				Value(email),
		),
	).WithTheme(huh.ThemeCharm())
}

func unsubscribeForm(email *string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email Address").
				Description("We're sorry to see you go.").
				Placeholder("your@email.com").
				Validate(validateEmail).
				Value(email),
			huh.NewConfirm().
				Title("Unsubscribe from the digest?").
				Affirmative("Unsubscribe").
				Negative("Cancel").
				Value(confirm),
		),
	).WithTheme(huh.ThemeCharm())
}
