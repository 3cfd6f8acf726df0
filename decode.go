// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"fmt"
	"io"
)

// Options contains the options for the Decode function.
type Options struct {
	// The Reader to read the card source from. It is read to EOF up front;
	// card payloads are small single-file metadata, not large media.
	R io.Reader

	// The declared media type of the source.
	MediaType MediaType

	// Warnf will be called for each warning, e.g. when a WebP decode
	// strategy is probed and found not to apply. Defaults to a no-op.
	Warnf func(string, ...any)
}

// Decode extracts the character card from the source described by opts.
//
// It either returns a complete Character or an error; there is no partial
// success and no internal retry. Each call is independent and may run
// concurrently with others on separate inputs.
func Decode(opts Options) (*Character, error) {
	if opts.R == nil {
		return nil, fmt.Errorf("no reader provided")
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	switch opts.MediaType {
	case MediaTypeJSON, MediaTypePNG, MediaTypeWebP:
	default:
		return nil, &UnsupportedMediaTypeError{Declared: opts.MediaType.String()}
	}

	data, err := io.ReadAll(opts.R)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return decodeBytes(data, opts.MediaType, opts.Warnf)
}

func decodeBytes(data []byte, mediaType MediaType, warnf func(string, ...any)) (*Character, error) {
	switch mediaType {
	case MediaTypeJSON:
		// The whole stream is the payload; no residual image, no fallback
		// avatar.
		meta, err := decodeJSONPayload(data)
		if err != nil {
			return nil, err
		}
		return NewCharacter(*meta, ""), nil
	case MediaTypePNG:
		payload, residual, err := locatePNGPayload(data)
		if err != nil {
			return nil, err
		}
		meta, err := decodePNGPayload(payload)
		if err != nil {
			return nil, err
		}
		return NewCharacter(*meta, avatarDataURI(MediaTypePNG, residual)), nil
	case MediaTypeWebP:
		uc, err := locateWebPUserComment(data)
		if err != nil {
			return nil, err
		}
		meta, err := decodeWebPPayload(uc, warnf)
		if err != nil {
			return nil, err
		}
		// WebP keeps its pixel data in place; the original bytes are the
		// fallback avatar as-is.
		return NewCharacter(*meta, avatarDataURI(MediaTypeWebP, data)), nil
	default:
		return nil, &UnsupportedMediaTypeError{Declared: mediaType.String()}
	}
}
