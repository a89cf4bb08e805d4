// Package iojson writes JSON for machine-readable CLI output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is written in place of the payload when it cannot be marshalled.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// marshalError builds the Error blob by hand when even Error fails to
// marshal.
func marshalError(msg string, cause error) string {
	bits, err := json.Marshal(Error{Message: msg, Data: map[string]any{"json_error": cause.Error()}})
	if err != nil {
		msgBytes, _ := json.Marshal(msg)
		return fmt.Sprintf(`{"message":%s}`, msgBytes)
	}
	return string(bits)
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// as an Error object on ew.
func WriteWith(w, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, marshalError("marshal output", err))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
