// Package form provides the input fields used by the landing page forms.
package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string
}

// Group tracks focus across an ordered list of fields.
type Group struct {
	fields []Field
	index  int
}

// NewGroup creates a group with no field focused.
func NewGroup(fields ...Field) *Group {
	return &Group{fields: fields, index: -1}
}

// Fields returns the fields in order.
func (g *Group) Fields() []Field { return g.fields }

// Focused returns the focused field, or nil.
func (g *Group) Focused() Field {
	if g.index < 0 || g.index >= len(g.fields) {
		return nil
	}
	return g.fields[g.index]
}

// OnLast reports whether the last field has focus.
func (g *Group) OnLast() bool {
	return g.index == len(g.fields)-1
}

// FocusIndex focuses the field at i and blurs the rest.
func (g *Group) FocusIndex(i int) tea.Cmd {
	if len(g.fields) == 0 {
		return nil
	}
	g.Blur()
	g.index = ((i % len(g.fields)) + len(g.fields)) % len(g.fields)
	return g.fields[g.index].Focus()
}

// Next moves focus forward, wrapping around.
func (g *Group) Next() tea.Cmd { return g.FocusIndex(g.index + 1) }

// Prev moves focus backward, wrapping around.
func (g *Group) Prev() tea.Cmd { return g.FocusIndex(g.index - 1) }

// Blur removes focus from every field.
func (g *Group) Blur() {
	for _, f := range g.fields {
		f.Blur()
	}
	g.index = -1
}

// Update forwards msg to the focused field.
func (g *Group) Update(msg tea.Msg) tea.Cmd {
	f := g.Focused()
	if f == nil {
		return nil
	}
	var cmd tea.Cmd
	g.fields[g.index], cmd = f.Update(msg)
	return cmd
}
