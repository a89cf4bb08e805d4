package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radxishan/digest/pkg/tuitest"
)

func TestHeroSource(t *testing.T) {
	assert.Equal(t, heroMarkdown, heroSource(0))
	assert.Equal(t, heroMarkdown, heroSource(-1))
	assert.Contains(t, heroSource(1200), "_Join 1200 readers_")
}

func TestRenderHero(t *testing.T) {
	out := tuitest.StripANSI(renderHero(7, 80))

	assert.Contains(t, out, "Stay Ahead with AI News Digest")
	assert.Contains(t, out, "Daily")
	assert.Contains(t, out, "5 Min")
	assert.Contains(t, out, "Join 7 readers")
	assert.NotContains(t, out, "**")
}
