package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/radxishan/digest/internal/core/logging"
	"github.com/radxishan/digest/internal/core/subscription"
)

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.hero = renderHero(m.count, m.contentWidth())

	fieldWidth := max((m.contentWidth()-12)/2, 20)
	m.nameField.SetWidth(fieldWidth)
	m.emailField.SetWidth(fieldWidth)
	m.unsubscribeField.SetWidth(min(m.contentWidth()-12, 50))

	// Publish startup warnings on the first WindowSizeMsg
	if len(m.startupWarnings) > 0 {
		for _, w := range m.startupWarnings {
			m.notifyBus.Warnf("%s", w)
		}
		m.startupWarnings = nil
		return m, m.ensureToastTick()
	}
	return m, nil
}

// --- Data ---

func (m Model) handleSubscriberCount(msg subscriberCountMsg) (tea.Model, tea.Cmd) {
	m.count = msg.count
	m.hero = renderHero(m.count, m.contentWidth())
	return m, nil
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// --- Keys ---

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch m.focus {
	case focusUnsubscribe:
		return m.handleUnsubscribeKey(msg)
	case focusSubscribe:
		return m.handleSubscribeKey(msg)
	default:
		return m.handleNavKey(msg)
	}
}

func (m Model) handleNavKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Unsubscribe):
		return m.openUnsubscribe()
	case key.Matches(msg, m.keys.Subscribe):
		m.focus = focusSubscribe
		return m, m.subscribeFields.FocusIndex(0)
	case key.Matches(msg, m.keys.Dismiss):
		m.toastController.Dismiss()
	case key.Matches(msg, m.keys.Back):
		m.toastController.DismissAll()
	}
	return m, nil
}

func (m Model) handleSubscribeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.subscribeFields.Blur()
		m.focus = focusNav
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if !m.subscribeFields.OnLast() {
			return m, m.subscribeFields.Next()
		}
		return m.submitSubscribe()
	case key.Matches(msg, m.keys.Next):
		return m, m.subscribeFields.Next()
	case key.Matches(msg, m.keys.Prev):
		return m, m.subscribeFields.Prev()
	}

	return m, m.subscribeFields.Update(msg)
}

func (m Model) handleUnsubscribeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.closeUnsubscribe()
	case key.Matches(msg, m.keys.Submit):
		return m.submitUnsubscribe()
	}

	var cmd tea.Cmd
	_, cmd = m.unsubscribeField.Update(msg)
	return m, cmd
}

// updateFocusedInput forwards non-key messages (cursor blink) to the input
// that has focus.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSubscribe:
		return m, m.subscribeFields.Update(msg)
	case focusUnsubscribe:
		_, cmd := m.unsubscribeField.Update(msg)
		return m, cmd
	}
	return m, nil
}

// --- Subscribe ---

func (m Model) submitSubscribe() (tea.Model, tea.Cmd) {
	// The controller keeps the in-flight values until it settles.
	if m.subscribe.Submitting() {
		return m, nil
	}
	m.subscribe.Email = m.emailField.Value()
	m.subscribe.Name = m.nameField.Value()

	req, ok := m.subscribe.Begin()
	if !ok {
		return m, m.ensureToastTick()
	}

	f, ctx := m.subscribe, logging.WithForm(m.ctx, "subscribe")
	send := func() tea.Msg {
		res, err := f.Send(ctx, req)
		return subscribeSettledMsg{ctx: ctx, result: res, err: err}
	}
	return m, send
}

func (m Model) handleSubscribeSettled(msg subscribeSettledMsg) (tea.Model, tea.Cmd) {
	state := m.subscribe.Settle(msg.ctx, msg.result, msg.err)
	log.Debug().Stringer("outcome", state).Msg("subscribe settled")

	// Fields are only cleared on success; anything typed while the request
	// was in flight survives a failure.
	if state == subscription.StateSuccess {
		m.nameField.SetValue(m.subscribe.Name)
		m.emailField.SetValue(m.subscribe.Email)
	}
	return m, m.ensureToastTick()
}

// --- Unsubscribe ---

func (m Model) openUnsubscribe() (tea.Model, tea.Cmd) {
	m.unsubscribe.Open()
	m.focus = focusUnsubscribe
	m.unsubscribeField.SetValue(m.unsubscribe.Email)
	return m, m.unsubscribeField.Focus()
}

func (m Model) closeUnsubscribe() (tea.Model, tea.Cmd) {
	if !m.unsubscribe.Submitting() {
		m.unsubscribe.Email = m.unsubscribeField.Value()
	}
	m.unsubscribe.Close()
	m.unsubscribeField.Blur()
	m.focus = focusNav
	return m, nil
}

func (m Model) submitUnsubscribe() (tea.Model, tea.Cmd) {
	if m.unsubscribe.Submitting() {
		return m, nil
	}
	m.unsubscribe.Email = m.unsubscribeField.Value()

	req, ok := m.unsubscribe.Begin()
	if !ok {
		return m, m.ensureToastTick()
	}

	f, ctx := m.unsubscribe, logging.WithForm(m.ctx, "unsubscribe")
	send := func() tea.Msg {
		res, err := f.Send(ctx, req)
		return unsubscribeSettledMsg{ctx: ctx, result: res, err: err}
	}
	return m, send
}

func (m Model) handleUnsubscribeSettled(msg unsubscribeSettledMsg) (tea.Model, tea.Cmd) {
	state := m.unsubscribe.Settle(msg.ctx, msg.result, msg.err)
	log.Debug().Stringer("outcome", state).Msg("unsubscribe settled")

	if state == subscription.StateSuccess {
		m.unsubscribeField.SetValue(m.unsubscribe.Email)
	}
	if !m.unsubscribe.IsOpen() && m.focus == focusUnsubscribe {
		m.unsubscribeField.Blur()
		m.focus = focusNav
	}
	return m, m.ensureToastTick()
}
