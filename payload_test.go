// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDecodeJSONPayload(t *testing.T) {
	c := qt.New(t)

	meta, err := decodeJSONPayload([]byte(`{"name":"Aja","description":"An old friend.","tags":["friendly","old"]}`))
	c.Assert(err, qt.IsNil)
	c.Assert(meta.Name, qt.Equals, "Aja")
	c.Assert(meta.Description, qt.Equals, "An old friend.")
	c.Assert(meta.Tags, qt.DeepEquals, []string{"friendly", "old"})

	// This path is strict; json5-isms must fail.
	_, err = decodeJSONPayload([]byte(`{name: "Aja"}`))
	var malformed *MalformedPayloadError
	c.Assert(errors.As(err, &malformed), qt.IsTrue)
}

func TestDecodePNGPayload(t *testing.T) {
	c := qt.New(t)

	b64 := func(s string) string {
		return base64.StdEncoding.EncodeToString([]byte(s))
	}

	c.Run("top-level card", func(c *qt.C) {
		meta, err := decodePNGPayload(b64(`{"name":"Aja","first_mes":"Hello."}`))
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Aja")
		c.Assert(meta.FirstMes, qt.Equals, "Hello.")
	})

	c.Run("2.0 envelope", func(c *qt.C) {
		meta, err := decodePNGPayload(b64(`{"spec_version":"2.0","name":"Outer","data":{"name":"Inner","creator":"someone"}}`))
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Inner")
		c.Assert(meta.Creator, qt.Equals, "someone")
	})

	c.Run("unknown spec_version stays top-level", func(c *qt.C) {
		meta, err := decodePNGPayload(b64(`{"spec_version":"3.0","name":"Outer","data":{"name":"Inner"}}`))
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Outer")
	})

	c.Run("2.0 envelope without data", func(c *qt.C) {
		meta, err := decodePNGPayload(b64(`{"spec_version":"2.0"}`))
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "")
	})

	c.Run("bad base64", func(c *qt.C) {
		_, err := decodePNGPayload("not base64!!!")
		var malformed *MalformedPayloadError
		c.Assert(errors.As(err, &malformed), qt.IsTrue)
	})

	c.Run("bad json", func(c *qt.C) {
		_, err := decodePNGPayload(b64(`{"name":`))
		var malformed *MalformedPayloadError
		c.Assert(errors.As(err, &malformed), qt.IsTrue)
	})
}

func byteList(s string) string {
	parts := make([]string, 0, len(s))
	for _, b := range []byte(s) {
		parts = append(parts, strconv.Itoa(int(b)))
	}
	return strings.Join(parts, ",")
}

func TestDecodeWebPPayload(t *testing.T) {
	c := qt.New(t)

	discard := func(string, ...any) {}

	c.Run("description strategy", func(c *qt.C) {
		// Unquoted keys and a trailing comma: some historical encoders
		// produced non-strict JSON.
		uc := &userComment{description: `{name: "Mira", personality: "stoic",}`}
		meta, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Mira")
		c.Assert(meta.Personality, qt.Equals, "stoic")
	})

	c.Run("Undefined sentinel skips description", func(c *qt.C) {
		uc := &userComment{
			description: "Undefined",
			values:      []string{`{"name":"FromValue"}`},
		}
		meta, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "FromValue")
	})

	c.Run("value strategy wins over byte-list", func(c *qt.C) {
		uc := &userComment{values: []string{`{"name":"Direct"}`}}
		meta, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Direct")
	})

	c.Run("byte-list fallback", func(c *qt.C) {
		uc := &userComment{values: []string{byteList(`{"name":"Bytes","scenario":"a cave"}`)}}
		var warned []string
		warnf := func(format string, args ...any) {
			warned = append(warned, format)
		}
		meta, err := decodeWebPPayload(uc, warnf)
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Bytes")
		c.Assert(meta.Scenario, qt.Equals, "a cave")
		// The description and value strategies were probed and skipped.
		c.Assert(len(warned), qt.Equals, 2)
	})

	c.Run("byte-list with BOM", func(c *qt.C) {
		payload := "239,187,191," + byteList(`{"name":"Bom"}`)
		uc := &userComment{values: []string{payload}}
		meta, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.IsNil)
		c.Assert(meta.Name, qt.Equals, "Bom")
	})

	c.Run("byte value out of range", func(c *qt.C) {
		uc := &userComment{values: []string{"300,34,125"}}
		_, err := decodeWebPPayload(uc, discard)
		var malformed *MalformedPayloadError
		c.Assert(errors.As(err, &malformed), qt.IsTrue)
	})

	c.Run("wrong value array length", func(c *qt.C) {
		uc := &userComment{values: []string{`{"name":"A"}`, `{"name":"B"}`}}
		_, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.ErrorIs, ErrNoMetadata)
	})

	c.Run("byte-list decoding to non-json exhausts the chain", func(c *qt.C) {
		// "123" fails the direct parse, is a valid byte list decoding to
		// "{", and that fails too; the chain must end, not loop back.
		uc := &userComment{values: []string{"123"}}
		_, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.ErrorIs, ErrNoMetadata)
	})

	c.Run("nothing usable", func(c *qt.C) {
		uc := &userComment{description: "Undefined", values: []string{"not json at all"}}
		_, err := decodeWebPPayload(uc, discard)
		c.Assert(err, qt.ErrorIs, ErrNoMetadata)
	})

	c.Run("nil user comment", func(c *qt.C) {
		_, err := decodeWebPPayload(nil, discard)
		c.Assert(err, qt.ErrorIs, ErrNoMetadata)
	})
}

func TestParseByteList(t *testing.T) {
	c := qt.New(t)

	b, ok, err := parseByteList("104, 105")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(string(b), qt.Equals, "hi")

	_, ok, err = parseByteList("104,hello")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, ok, err = parseByteList("")
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, _, err = parseByteList("-1,5")
	var malformed *MalformedPayloadError
	c.Assert(errors.As(err, &malformed), qt.IsTrue)
}

func TestParseLoosePreservesOpaqueFields(t *testing.T) {
	c := qt.New(t)

	meta, err := parseLoose(`{name: "Opaque", extensions: {vendor: {depth: 3}}, alternate_greetings: ["hi", {text: "yo"}]}`)
	c.Assert(err, qt.IsNil)
	c.Assert(meta.Name, qt.Equals, "Opaque")
	c.Assert(string(meta.Extensions), qt.Contains, `"depth":3`)
	c.Assert(len(meta.AlternateGreetings), qt.Equals, 2)
}
