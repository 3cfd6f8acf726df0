// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"errors"
	"fmt"
)

// ErrNoMetadata is returned when the container parsed successfully but no
// embedded card payload could be located, or when every WebP decode strategy
// was exhausted.
var ErrNoMetadata = errors.New("no character metadata found")

// UnsupportedMediaTypeError is returned when the declared media type is
// outside the three supported values. This is a contract violation by the
// caller, not a property of the input bytes. Declared echoes whatever the
// caller supplied: a media type string, a filename extension or a MediaType
// value outside the enum.
type UnsupportedMediaTypeError struct {
	Declared string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type %q", e.Declared)
}

// MalformedPayloadError is returned when a payload location was found but
// its content fails structural decoding (bad base64, invalid UTF-8, parse
// error) at a step with no further fallback.
type MalformedPayloadError struct {
	err error
}

func (e *MalformedPayloadError) Error() string {
	return "malformed payload: " + e.err.Error()
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.err
}

func newMalformedPayloadError(err error) error {
	if err == nil {
		return nil
	}
	return &MalformedPayloadError{err: err}
}

func newMalformedPayloadErrorf(format string, args ...any) error {
	return &MalformedPayloadError{err: fmt.Errorf(format, args...)}
}
