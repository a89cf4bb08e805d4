package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/radxishan/digest/internal/core/notify"
)

const (
	subscribeSuccessMessage  = "Successfully subscribed! 🎉 Check your inbox for confirmation"
	subscribeRejectedMessage = "Subscription failed. Please try again."

	// SubscribeSuccessDuration is how long the subscribe confirmation stays up.
	SubscribeSuccessDuration = 5000 * time.Millisecond
)

// SubscribeForm collects a subscriber request, validates it and reports the
// outcome of the backend call through a notification Publisher.
type SubscribeForm struct {
	lifecycle

	Email string
	Name  string

	client Subscriber
	sink   notify.Publisher
}

// NewSubscribeForm creates an idle subscribe form. A nil sink discards
// notifications.
func NewSubscribeForm(client Subscriber, sink notify.Publisher) *SubscribeForm {
	if sink == nil {
		sink = notify.Discard
	}
	return &SubscribeForm{client: client, sink: sink}
}

// Begin starts a submission. It returns false without contacting the backend
// when a request is already in flight or when the email is rejected; in the
// latter case an error notification is published and the form is idle again.
// On true the form is Submitting and the caller must eventually call Settle.
func (f *SubscribeForm) Begin() (Request, bool) {
	if f.state != StateIdle {
		return Request{}, false
	}

	f.moveTo(StateValidating)
	if err := ValidateEmail(f.Email); err != nil {
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: err.Error()})
		f.moveTo(StateIdle)
		return Request{}, false
	}

	f.moveTo(StateSubmitting)
	return Request{Email: f.Email, Name: f.Name}, true
}

// Send performs the backend call for req. It does not touch form state and
// may run off the UI goroutine.
func (f *SubscribeForm) Send(ctx context.Context, req Request) (Result, error) {
	return f.client.Subscribe(ctx, req.Email, req.Name)
}

// Settle applies the outcome of Send, publishes the matching notification and
// returns the form to Idle. The returned state is StateSuccess or StateFailed,
// or the current state unchanged if no submission was in flight.
func (f *SubscribeForm) Settle(ctx context.Context, res Result, err error) State {
	if f.state != StateSubmitting {
		return f.state
	}

	outcome := StateFailed
	switch {
	case err != nil:
		log.Debug().Ctx(ctx).Err(err).Msg("subscribe failed")
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: subscribeErrorMessage(err)})
	case res.Success:
		outcome = StateSuccess
		f.Email = ""
		f.Name = ""
		f.sink.Publish(notify.Notification{
			Level:    notify.LevelSuccess,
			Message:  subscribeSuccessMessage,
			Duration: SubscribeSuccessDuration,
		})
	default:
		msg := res.Message
		if msg == "" {
			msg = subscribeRejectedMessage
		}
		f.sink.Publish(notify.Notification{Level: notify.LevelError, Message: msg})
	}

	f.moveTo(outcome)
	f.moveTo(StateIdle)
	return outcome
}

// Submit runs a whole submission synchronously. It returns StateSuccess or
// StateFailed when a request was sent, and StateIdle when nothing was sent.
func (f *SubscribeForm) Submit(ctx context.Context) State {
	req, ok := f.Begin()
	if !ok {
		return StateIdle
	}
	res, err := f.Send(ctx, req)
	return f.Settle(ctx, res, err)
}

func subscribeErrorMessage(err error) string {
	var se *SubscriptionError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return FallbackSubscribeError
}
