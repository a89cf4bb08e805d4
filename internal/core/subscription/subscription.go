// Package subscription holds the newsletter subscription domain: request and
// result types, email validation and the subscribe/unsubscribe form
// controllers.
package subscription

import (
	"context"
	"fmt"
)

const (
	FallbackSubscribeError   = "Failed to subscribe"
	FallbackUnsubscribeError = "Failed to unsubscribe"
)

// Request is the payload submitted to register an email for the digest.
type Request struct {
	Email string
	Name  string // optional
}

// UnsubscribeRequest is the payload submitted to remove an email.
type UnsubscribeRequest struct {
	Email string
}

// Result is the backend's answer to a subscribe or unsubscribe call.
type Result struct {
	Success bool
	Message string
}

// Subscriber registers emails with the backend.
type Subscriber interface {
	Subscribe(ctx context.Context, email, name string) (Result, error)
}

// Unsubscriber removes emails from the backend.
type Unsubscriber interface {
	Unsubscribe(ctx context.Context, email string) (Result, error)
}

// SubscriptionError is returned when a subscribe call fails in transport or
// with a non-success status. Message is safe to show to the user.
type SubscriptionError struct {
	Message string
	Err     error
}

func (e *SubscriptionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *SubscriptionError) Unwrap() error { return e.Err }

// UnsubscriptionError is the unsubscribe counterpart of SubscriptionError.
type UnsubscriptionError struct {
	Message string
	Err     error
}

func (e *UnsubscriptionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UnsubscriptionError) Unwrap() error { return e.Err }
