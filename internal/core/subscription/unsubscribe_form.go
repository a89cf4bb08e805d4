package subscription

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/radxishan/digest/internal/core/notify"
)

const (
	unsubscribeSuccessMessage  = "Successfully unsubscribed! Check your email for confirmation."
	unsubscribeRejectedMessage = "Failed to unsubscribe. Please try again."
)

// Overlay is the visibility state of the dismissible unsubscribe dialog.
type Overlay struct {
	open bool
}

// Open shows the overlay.
func (o *Overlay) Open() { o.open = true }

// Close hides the overlay. Entered values are kept.
func (o *Overlay) Close() { o.open = false }

// IsOpen reports whether the overlay is visible.
func (o *Overlay) IsOpen() bool { return o.open }

// UnsubscribeForm is the single-field form shown inside the unsubscribe
// overlay. A successful submission closes the overlay.
type UnsubscribeForm struct {
	lifecycle
	Overlay

	Email string

	client Unsubscriber
	sink   notify.Publisher
}

// NewUnsubscribeForm creates an idle, closed unsubscribe form. A nil sink
// discards notifications.
func NewUnsubscribeForm(client Unsubscriber, sink notify.Publisher) *UnsubscribeForm {
	if sink == nil {
		sink = notify.Discard
	}
	return &UnsubscribeForm{client: client, sink: sink}
}

// Begin starts a submission. See SubscribeForm.Begin.
func (f *UnsubscribeForm) Begin() (UnsubscribeRequest, bool) {
	if f.state != StateIdle {
		return UnsubscribeRequest{}, false
	}

	f.moveTo(StateValidating)
	if err := ValidateEmail(f.Email); err != nil {
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: err.Error()})
		f.moveTo(StateIdle)
		return UnsubscribeRequest{}, false
	}

	f.moveTo(StateSubmitting)
	return UnsubscribeRequest{Email: f.Email}, true
}

// Send performs the backend call for req without touching form state.
func (f *UnsubscribeForm) Send(ctx context.Context, req UnsubscribeRequest) (Result, error) {
	return f.client.Unsubscribe(ctx, req.Email)
}

// Settle applies the outcome of Send. On success the field is cleared and the
// overlay closed; on failure both are left as they were.
func (f *UnsubscribeForm) Settle(ctx context.Context, res Result, err error) State {
	if f.state != StateSubmitting {
		return f.state
	}

	outcome := StateFailed
	switch {
	case err != nil:
		log.Debug().Ctx(ctx).Err(err).Msg("unsubscribe failed")
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: unsubscribeErrorMessage(err)})
	case res.Success:
		outcome = StateSuccess
		f.sink.Publish(notify.Notification{Level: notify.LevelSuccess, Message: unsubscribeSuccessMessage})
		f.Email = ""
		f.Close()
	default:
		msg := res.Message
		if msg == "" {
			msg = unsubscribeRejectedMessage
		}
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: msg})
	}

	f.moveTo(outcome)
	f.moveTo(StateIdle)
	return outcome
}

// Submit runs a whole submission synchronously. See SubscribeForm.Submit.
func (f *UnsubscribeForm) Submit(ctx context.Context) State {
	req, ok := f.Begin()
	if !ok {
		return StateIdle
	}
	res, err := f.Send(ctx, req)
	return f.Settle(ctx, res, err)
}

func unsubscribeErrorMessage(err error) string {
	var ue *UnsubscriptionError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return FallbackUnsubscribeError
}
