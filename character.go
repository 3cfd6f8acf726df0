// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

// Package character extracts character card metadata embedded in PNG and WebP
// images, or provided directly as a JSON document, and normalizes the several
// competing historical encodings into one canonical record.
package character

import "encoding/json"

// AvatarNone is the sentinel value some card writers store in the avatar
// field to mean "no embedded avatar". It is distinct from the empty string.
const AvatarNone = "none"

// envelopeSpecVersion is the only spec_version value that triggers envelope
// unwrapping. Other values are passed through untouched.
const envelopeSpecVersion = "2.0"

// Metadata is the canonical character card record.
//
// Two schema generations use different field names for the same concept
// (Name vs CharName, SystemPrompt/Description vs CharPersona, FirstMes vs
// CharGreeting). Both are kept verbatim; use the accessors on Character to
// resolve the drift.
type Metadata struct {
	Name                    string   `json:"name,omitempty"`
	CharName                string   `json:"char_name,omitempty"`
	Description             string   `json:"description,omitempty"`
	SystemPrompt            string   `json:"system_prompt,omitempty"`
	Personality             string   `json:"personality,omitempty"`
	Scenario                string   `json:"scenario,omitempty"`
	WorldScenario           string   `json:"world_scenario,omitempty"`
	FirstMes                string   `json:"first_mes,omitempty"`
	CharGreeting            string   `json:"char_greeting,omitempty"`
	MesExample              string   `json:"mes_example,omitempty"`
	ExampleDialogue         string   `json:"example_dialogue,omitempty"`
	PostHistoryInstructions string   `json:"post_history_instructions,omitempty"`
	Creator                 string   `json:"creator,omitempty"`
	CreatorNotes            string   `json:"creator_notes,omitempty"`
	CharacterVersion        string   `json:"character_version,omitempty"`
	CreateDate              string   `json:"create_date,omitempty"`
	Tags                    []string `json:"tags,omitempty"`
	Avatar                  string   `json:"avatar,omitempty"`

	// CharacterBook references an external lore document. It is carried
	// opaquely; this package never interprets it.
	CharacterBook json.RawMessage `json:"character_book,omitempty"`

	// AlternateGreetings are opaque greeting entries.
	AlternateGreetings []json.RawMessage `json:"alternate_greetings,omitempty"`

	// Extensions is an open bag of vendor metadata, preserved as-is.
	Extensions json.RawMessage `json:"extensions,omitempty"`
}

// card is the spec-versioned envelope one schema generation wraps the
// metadata in. Payloads without the envelope put the Metadata fields at the
// top level directly.
type card struct {
	SpecVersion string    `json:"spec_version"`
	Data        *Metadata `json:"data"`
}

// Character is the result of an extraction: the normalized metadata plus an
// optional fallback avatar materialized from the container's image bytes.
// It is a value object, constructed once per source file and immutable.
type Character struct {
	meta           Metadata
	fallbackAvatar string
}

// NewCharacter returns a Character owning meta. fallbackAvatar is used by
// Avatar when the metadata does not carry a usable avatar of its own.
func NewCharacter(meta Metadata, fallbackAvatar string) *Character {
	return &Character{meta: meta, fallbackAvatar: fallbackAvatar}
}

// Metadata returns the canonical record.
func (c *Character) Metadata() Metadata {
	return c.meta
}

// Name returns the display name, preferring the newer name field over the
// legacy char_name. Empty string when both are absent.
func (c *Character) Name() string {
	if c.meta.Name != "" {
		return c.meta.Name
	}
	return c.meta.CharName
}

// Description returns the long-form persona text, preferring system_prompt
// over the legacy description field. Empty string when both are absent.
func (c *Character) Description() string {
	if c.meta.SystemPrompt != "" {
		return c.meta.SystemPrompt
	}
	return c.meta.Description
}

// Avatar returns the metadata's own avatar reference unless it is empty or
// the "none" sentinel, then the fallback avatar, then the empty string.
func (c *Character) Avatar() string {
	if c.meta.Avatar != "" && c.meta.Avatar != AvatarNone {
		return c.meta.Avatar
	}
	return c.fallbackAvatar
}
