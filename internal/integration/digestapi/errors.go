package digestapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusError is a non-2xx answer from the backend. Detail holds the
// `detail` string of the structured error body, when there was one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

// parseDetail extracts {"detail": "..."} from an error body. Validation
// errors carry a list under detail; those are not user-presentable and
// yield "".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// messageOr returns the server-provided detail carried by err, or fallback.
func messageOr(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}
