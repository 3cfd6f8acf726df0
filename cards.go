// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DecodeFile extracts the card from the file at path, inferring the media
// type from the filename extension.
func DecodeFile(path string) (*Character, error) {
	mediaType, err := MediaTypeFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(Options{R: f, MediaType: mediaType})
}

// DecodeDir extracts cards from every supported file directly under dir.
// Files with unsupported extensions are skipped; files that fail extraction
// are reported through warnf (when non-nil) and skipped, so one bad card
// does not abort the scan.
func DecodeDir(dir string, warnf func(string, ...any)) ([]*Character, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	var cards []*Character
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !slices.Contains(Extensions(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		card, err := DecodeFile(path)
		if err != nil {
			warnf("skipping %s: %v", path, err)
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}
