package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/radxishan/digest/pkg/tuitest"
)

func TestHelpLine(t *testing.T) {
	k := defaultKeyMap()

	assert.Equal(t, "enter submit • esc back", helpLine(k.modalBindings()))
	assert.Equal(t, "s subscribe • u unsubscribe • x dismiss toast • q quit", helpLine(k.navBindings()))
	assert.Empty(t, helpLine([]key.Binding{}))
}

func TestNavKeys_inert_while_input_focused(t *testing.T) {
	keys := []struct {
		name string
		msg  tea.KeyPressMsg
	}{
		{"u", tuitest.KeyPress('u')},
		{"s", tuitest.KeyPress('s')},
		{"tab", tuitest.KeyTab()},
		{"q", tuitest.KeyPress('q')},
	}

	areas := []struct {
		focus string
		open  rune
	}{
		{"subscribe", 's'},
		{"unsubscribe", 'u'},
	}

	for _, area := range areas {
		for _, k := range keys {
			t.Run(area.focus+"/"+k.name, func(t *testing.T) {
				m := newTestModel(t, &fakeAPI{})
				m, _ = step(t, m, tuitest.KeyPress(area.open))
				overlayOpen := m.unsubscribe.IsOpen()

				m, _ = step(t, m, k.msg)

				assert.Equal(t, area.focus, m.Focus())
				assert.Equal(t, overlayOpen, m.unsubscribe.IsOpen())
				assert.NoError(t, m.ctx.Err(), "must not quit")
				assert.False(t, m.subscribe.Submitting())
				assert.False(t, m.unsubscribe.Submitting())
			})
		}
	}
}
