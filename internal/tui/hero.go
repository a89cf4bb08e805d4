package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/radxishan/digest/internal/core/styles"
)

const heroMarkdown = `# Stay Ahead with AI News Digest

Get personalized AI news summaries delivered to your inbox daily.
Curated by AI, crafted for humans.

- **Daily** Updates
- **AI-Curated** Content
- **5 Min** Read Time
`

// heroSource returns the hero markdown, with a social-proof line when the
// subscriber count is known.
func heroSource(count int) string {
	if count <= 0 {
		return heroMarkdown
	}
	return heroMarkdown + fmt.Sprintf("\n_Join %d readers_\n", count)
}

// renderHero renders the hero section for the given width. Rendering errors
// fall back to the raw markdown.
func renderHero(count, width int) string {
	src := heroSource(count)

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		log.Debug().Err(err).Msg("hero renderer")
		return src
	}

	out, err := r.Render(src)
	if err != nil {
		log.Debug().Err(err).Msg("hero render")
		return src
	}
	return strings.Trim(out, "\n")
}
