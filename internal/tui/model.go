// Package tui implements the terminal landing page: hero section, subscribe
// card, unsubscribe overlay and toast notifications.
package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/radxishan/digest/internal/core/config"
	"github.com/radxishan/digest/internal/core/notify"
	"github.com/radxishan/digest/internal/core/styles"
	"github.com/radxishan/digest/internal/core/subscription"
	"github.com/radxishan/digest/internal/tui/components/form"
	tuinotify "github.com/radxishan/digest/internal/tui/notify"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// API is the backend surface the landing page needs.
type API interface {
	subscription.Subscriber
	subscription.Unsubscriber
	SubscriberCount(ctx context.Context) int
}

// Deps are the collaborators of the landing page.
type Deps struct {
	API    API
	Config *config.Config
}

// Opts tweak start-up behaviour.
type Opts struct {
	// Warnings are shown as toasts once the first frame is drawn.
	Warnings []string
}

type focusArea int

const (
	focusNav focusArea = iota
	focusSubscribe
	focusUnsubscribe
)

func (f focusArea) String() string {
	switch f {
	case focusSubscribe:
		return "subscribe"
	case focusUnsubscribe:
		return "unsubscribe"
	default:
		return "nav"
	}
}

// subscribeSettledMsg carries the outcome of an async subscribe call.
type subscribeSettledMsg struct {
	ctx    context.Context
	result subscription.Result
	err    error
}

// unsubscribeSettledMsg carries the outcome of an async unsubscribe call.
type unsubscribeSettledMsg struct {
	ctx    context.Context
	result subscription.Result
	err    error
}

type subscriberCountMsg struct {
	count int
}

// Model is the landing page bubbletea model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	api     API
	baseURL string
	keys    keyMap

	width  int
	height int
	focus  focusArea

	subscribe   *subscription.SubscribeForm
	unsubscribe *subscription.UnsubscribeForm

	nameField        *form.TextField
	emailField       *form.TextField
	subscribeFields  *form.Group
	unsubscribeField *form.TextField

	spinner spinner.Model
	count   int
	hero    string

	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView

	startupWarnings []string
}

// New creates the landing page model.
func New(deps Deps, opts Opts) Model {
	ctx, cancel := context.WithCancel(context.Background())

	notifyBus := tuinotify.NewBus()
	toastCtrl := NewToastController()
	toastView := NewToastView(toastCtrl)

	// Wire bus -> toast controller
	notifyBus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	subscribeForm := subscription.NewSubscribeForm(deps.API, notifyBus)
	subscribeForm.OnTransition(logTransition("subscribe"))
	unsubscribeForm := subscription.NewUnsubscribeForm(deps.API, notifyBus)
	unsubscribeForm.OnTransition(logTransition("unsubscribe"))

	nameField := form.NewTextField("Name", "Your name")
	emailField := form.NewTextField("Email Address *", "your@email.com")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	var baseURL string
	if deps.Config != nil {
		baseURL = deps.Config.BaseURL
	}

	return Model{
		ctx:              ctx,
		cancel:           cancel,
		api:              deps.API,
		baseURL:          baseURL,
		keys:             defaultKeyMap(),
		width:            defaultWidth,
		height:           defaultHeight,
		subscribe:        subscribeForm,
		unsubscribe:      unsubscribeForm,
		nameField:        nameField,
		emailField:       emailField,
		subscribeFields:  form.NewGroup(nameField, emailField),
		unsubscribeField: form.NewTextField("Email Address", "your@email.com"),
		spinner:          s,
		hero:             renderHero(0, defaultWidth),
		notifyBus:        notifyBus,
		toastController:  toastCtrl,
		toastView:        toastView,
		startupWarnings:  opts.Warnings,
	}
}

func logTransition(form string) subscription.TransitionFunc {
	return func(from, to subscription.State) {
		log.Debug().
			Str("form", form).
			Stringer("from", from).
			Stringer("to", to).
			Msg("form state")
	}
}

// Init fetches the subscriber count and starts the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCount(), m.spinner.Tick)
}

func (m Model) fetchCount() tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		return subscriberCountMsg{count: api.SubscriberCount(ctx)}
	}
}

// Update routes messages to their handlers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case subscriberCountMsg:
		return m.handleSubscriberCount(msg)
	case subscribeSettledMsg:
		return m.handleSubscribeSettled(msg)
	case unsubscribeSettledMsg:
		return m.handleUnsubscribeSettled(msg)

	case toastTickMsg:
		return m.handleToastTick(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

// ensureToastTick starts the toast countdown if toasts are showing and no
// tick chain is running yet.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// Focus reports which area has keyboard focus. Exposed for tests and debugging.
func (m Model) Focus() string { return m.focus.String() }

// Count returns the last fetched subscriber count.
func (m Model) Count() int { return m.count }
