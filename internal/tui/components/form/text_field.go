package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/radxishan/digest/internal/core/styles"
)

const defaultFieldWidth = 40

// TextField is a single-line text input form field.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(defaultFieldWidth)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	content := lipgloss.JoinVertical(lipgloss.Left, title, f.input.View())

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetWidth sets the visible width of the input.
func (f *TextField) SetWidth(w int) {
	f.input.SetWidth(max(w, 10))
}

func (f *TextField) Focused() bool     { return f.focused }
func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextField) Label() string     { return f.label }
