// Package iojson writes indented JSON documents for machine-readable command
// output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the document written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// fallback builds an error document by hand for when marshaling itself fails.
func fallback(msg string, err error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// WriteWith writes obj to w as indented JSON followed by a newline. If obj
// cannot be marshaled, an Error document describing the failure goes to ew
// instead.
func WriteWith(w, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallback("marshal output", err))
		if werr != nil {
			return werr
		}
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteError writes an Error document to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	return WriteWith(w, w, Error{Message: msg, Data: data})
}
