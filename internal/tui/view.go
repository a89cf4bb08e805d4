package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/radxishan/digest/internal/core/styles"
)

const (
	maxContentWidth = 100
	modalWidth      = 60

	trustLine = "Free forever • No spam • Unsubscribe anytime"
)

func (m Model) contentWidth() int {
	return max(min(m.width, maxContentWidth)-2, 20)
}

// View renders the landing page with overlays.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	w, h := m.width, m.height

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderNavbar(),
		"",
		m.hero,
		"",
		m.renderSubscribeCard(),
		m.renderFooter(),
	)

	content := mainView
	if m.unsubscribe.IsOpen() {
		content = m.overlayUnsubscribe(mainView, w, h)
	}

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

func (m Model) renderNavbar() string {
	brand := styles.BrandStyle.Render(styles.IconSpark + " AI News Digest")
	hints := styles.NavHintStyle.Render(helpLine(m.keys.navBindings()))
	if m.count > 0 {
		hints = styles.CountStyle.Render(fmt.Sprintf("%s %d", styles.IconUsers, m.count)) + "  " + hints
	}

	gap := max(m.contentWidth()-lipgloss.Width(brand)-lipgloss.Width(hints), 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, lipgloss.NewStyle().Width(gap).Render(""), hints)
}

func (m Model) renderSubscribeCard() string {
	title := styles.CardTitle.Render(styles.IconMail + "  Subscribe to Our Newsletter")
	subtitle := styles.NavHintStyle.Render("Join thousands of AI enthusiasts receiving daily curated news.")

	var fields string
	if m.contentWidth() >= 70 {
		fields = lipgloss.JoinHorizontal(lipgloss.Top, m.nameField.View(), "  ", m.emailField.View())
	} else {
		fields = lipgloss.JoinVertical(lipgloss.Left, m.nameField.View(), m.emailField.View())
	}

	var button string
	switch {
	case m.subscribe.Submitting():
		button = styles.ButtonDisabledStyle.Render(m.spinner.View() + " Subscribing...")
	case m.focus == focusSubscribe && m.subscribeFields.OnLast():
		button = styles.ButtonFocusedStyle.Render("Subscribe Now →")
	default:
		button = styles.ButtonStyle.Render("Subscribe Now →")
	}

	trust := styles.TrustStyle.Render(styles.IconCheck + " " + trustLine)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		fields,
		"",
		button,
		trust,
	)

	return styles.CardStyle.Width(m.contentWidth()).Render(body)
}

func (m Model) renderFooter() string {
	var bindings string
	switch m.focus {
	case focusSubscribe:
		bindings = helpLine(m.keys.formBindings())
	case focusUnsubscribe:
		bindings = helpLine(m.keys.modalBindings())
	default:
		bindings = helpLine(m.keys.navBindings())
	}

	footer := bindings
	if m.baseURL != "" {
		footer += "  ·  " + m.baseURL
	}
	return styles.FormHelpStyle.Render(footer)
}

func (m Model) renderUnsubscribeModal() string {
	var button string
	if m.unsubscribe.Submitting() {
		button = styles.ButtonDisabledStyle.Render(m.spinner.View() + " Processing...")
	} else {
		button = styles.ButtonFocusedStyle.Render("Unsubscribe")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Unsubscribe"),
		"",
		lipgloss.NewStyle().Width(modalWidth-6).Render("We're sorry to see you go. Enter your email to unsubscribe from our newsletter."),
		"",
		m.unsubscribeField.View(),
		"",
		button,
		styles.ModalHelpStyle.Render(helpLine(m.keys.modalBindings())),
	)

	return styles.ModalStyle.Width(min(modalWidth, max(m.width-4, 30))).Render(content)
}

// overlayUnsubscribe centres the unsubscribe modal over background.
func (m Model) overlayUnsubscribe(background string, w, h int) string {
	modal := m.renderUnsubscribeModal()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	mW := lipgloss.Width(modal)
	mH := lipgloss.Height(modal)
	modalLayer.X(max((w-mW)/2, 0)).Y(max((h-mH)/2, 0)).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}
