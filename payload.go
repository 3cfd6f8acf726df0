// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"golang.org/x/text/encoding/unicode"
)

// undefinedSentinel is what EXIF readers report for a UserComment whose
// character encoding could not be determined.
const undefinedSentinel = "Undefined"

// decodeJSONPayload parses a pre-normalized card document with the strict
// JSON grammar. No envelope unwrapping on this path.
func decodeJSONPayload(text []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(text, &meta); err != nil {
		return nil, newMalformedPayloadError(err)
	}
	return &meta, nil
}

// decodePNGPayload decodes the base64 text of a chara chunk and parses it as
// strict JSON, unwrapping the spec_version "2.0" envelope when present.
// The version check is an exact string match; any other value leaves the
// document interpreted as a top-level card.
func decodePNGPayload(b64 string) (*Metadata, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, newMalformedPayloadError(fmt.Errorf("decoding base64: %w", err))
	}
	if !utf8.Valid(raw) {
		return nil, newMalformedPayloadErrorf("chara chunk payload is not valid UTF-8")
	}

	var env card
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, newMalformedPayloadError(err)
	}
	if env.SpecVersion == envelopeSpecVersion {
		if env.Data == nil {
			return &Metadata{}, nil
		}
		return env.Data, nil
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, newMalformedPayloadError(err)
	}
	return &meta, nil
}

// userComment is the normalized shape of a WebP EXIF UserComment entry as
// consumed by the decode strategies.
type userComment struct {
	description string
	values      []string
}

// webpStrategy is one candidate interpretation of a UserComment. decode
// reports ok=false when the strategy is structurally inapplicable to the
// comment, which is not an error; a non-nil error is fatal for the file.
type webpStrategy struct {
	name   string
	decode func(*userComment) (meta *Metadata, ok bool, err error)
}

// The order is load-bearing: at least two independent historical tools
// embedded JSON differently into the same EXIF tag, and a payload valid
// under the direct value parse must never reach the byte-list
// reinterpretation.
var webpStrategies = []webpStrategy{
	{"description", decodeUserCommentDescription},
	{"value", decodeUserCommentValue},
	{"byte-list", decodeUserCommentByteList},
}

// decodeWebPPayload runs the ordered strategy chain over the normalized
// UserComment, stopping at the first success. ErrNoMetadata when the chain
// is exhausted.
func decodeWebPPayload(uc *userComment, warnf func(string, ...any)) (*Metadata, error) {
	if uc == nil {
		return nil, ErrNoMetadata
	}
	for _, s := range webpStrategies {
		meta, ok, err := s.decode(uc)
		if err != nil {
			return nil, err
		}
		if ok {
			return meta, nil
		}
		warnf("user comment: %s strategy does not apply", s.name)
	}
	return nil, ErrNoMetadata
}

func decodeUserCommentDescription(uc *userComment) (*Metadata, bool, error) {
	if uc.description == "" || uc.description == undefinedSentinel {
		return nil, false, nil
	}
	meta, err := parseLoose(uc.description)
	if err != nil {
		return nil, false, nil
	}
	return meta, true, nil
}

func decodeUserCommentValue(uc *userComment) (*Metadata, bool, error) {
	if len(uc.values) != 1 {
		return nil, false, nil
	}
	meta, err := parseLoose(uc.values[0])
	if err != nil {
		return nil, false, nil
	}
	return meta, true, nil
}

func decodeUserCommentByteList(uc *userComment) (*Metadata, bool, error) {
	if len(uc.values) != 1 {
		return nil, false, nil
	}
	raw, ok, err := parseByteList(uc.values[0])
	if err != nil || !ok {
		return nil, false, err
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, false, newMalformedPayloadError(err)
	}
	if !utf8.Valid(text) {
		return nil, false, newMalformedPayloadErrorf("byte-list payload is not valid UTF-8")
	}
	meta, perr := parseLoose(string(text))
	if perr != nil {
		return nil, false, nil
	}
	return meta, true, nil
}

// parseLoose parses text with the permissive JSON-superset grammar (trailing
// commas, unquoted keys), renormalizes the result to strict JSON and decodes
// it into a Metadata. The intermediate step keeps opaque fields such as
// extensions byte-for-byte JSON.
func parseLoose(text string) (*Metadata, error) {
	var doc map[string]any
	if err := json5.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(normalized, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// parseByteList interprets s as a comma-separated list of decimal byte
// values. ok is false when s is not shaped like a byte list at all; a value
// outside 0-255 is a MalformedPayloadError, not a wraparound.
func parseByteList(s string) (b []byte, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false, nil
	}
	parts := strings.Split(s, ",")
	b = make([]byte, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false, nil
		}
		if n < 0 || n > 255 {
			return nil, false, newMalformedPayloadErrorf("byte value %d out of range", n)
		}
		b = append(b, byte(n))
	}
	return b, true, nil
}
