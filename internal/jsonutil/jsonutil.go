// Package jsonutil provides shared JSON helpers: decode and encode with
// context-wrapped errors so callers can report which document failed.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalObject unmarshals data into v after checking that the payload is a
// JSON object. Empty input and top-level arrays/scalars are rejected.
func UnmarshalObject(data []byte, v interface{}, context string) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%s: empty document", context)
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%s: expected JSON object", context)
	}
	return UnmarshalWithContext(trimmed, v, context)
}

// MarshalIndentWithContext encodes v as two-space indented JSON with a
// trailing newline, wrapping any error with context.
func MarshalIndentWithContext(v interface{}, context string) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return append(b, '\n'), nil
}
