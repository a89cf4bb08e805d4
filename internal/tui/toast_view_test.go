package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radxishan/digest/internal/core/notify"
	"github.com/radxishan/digest/internal/core/styles"
	"github.com/radxishan/digest/pkg/tuitest"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController())

	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelSuccess, styles.IconCheck},
		{notify.LevelError, styles.IconCross},
		{notify.LevelWarning, styles.IconWarning},
		{notify.LevelInfo, styles.IconInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController()
			v := NewToastView(c)

			c.Push(notify.Notification{Level: tt.level, Message: "test msg"})

			out := tuitest.StripANSI(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_stacks_oldest_first(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "second"})

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	v := NewToastView(NewToastController())

	bg := "background content"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))
}

func TestToastView_Overlay_positions_lower_right(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)
	c.Push(notify.Notification{Level: notify.LevelSuccess, Message: "positioned"})

	width, height := 120, 40
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}

	out := tuitest.StripANSI(v.Overlay(strings.Join(rows, "\n"), width, height))

	lines := strings.Split(out, "\n")
	toastLine := -1
	for i, line := range lines {
		if col := strings.Index(line, "positioned"); col >= 0 {
			toastLine = i
			assert.Greater(t, col, width/2, "toast should be on the right")
			break
		}
	}
	require.NotEqual(t, -1, toastLine, "toast text not found in output lines")
	assert.Greater(t, toastLine, height/2, "toast should be in the lower half")
}
