package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// keyMap holds the landing page bindings. Nav bindings only apply while no
// input has focus; form bindings apply inside the subscribe card and the
// unsubscribe overlay.
type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Unsubscribe key.Binding
	Subscribe   key.Binding
	Dismiss     key.Binding

	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Unsubscribe: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unsubscribe")),
		Subscribe:   key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "subscribe")),
		Dismiss:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) navBindings() []key.Binding {
	return []key.Binding{k.Subscribe, k.Unsubscribe, k.Dismiss, k.Quit}
}

func (k keyMap) formBindings() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back}
}

func (k keyMap) modalBindings() []key.Binding {
	return []key.Binding{k.Submit, k.Back}
}

// helpLine renders bindings as "key action • key action".
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
