package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	formKey      contextKey = "form"
)

// WithRequestID adds an API request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithForm adds the name of the submitting form (subscribe, unsubscribe) to
// the context.
func WithForm(ctx context.Context, form string) context.Context {
	return context.WithValue(ctx, formKey, form)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetForm retrieves the form name from the context.
// Returns empty string if not present.
func GetForm(ctx context.Context) string {
	if f, ok := ctx.Value(formKey).(string); ok {
		return f
	}
	return ""
}
