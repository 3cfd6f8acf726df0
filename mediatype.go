package character

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MediaTypeInvalid is the zero value; it is not a supported input.
	MediaTypeInvalid MediaType = iota
	// MediaTypeJSON is a bare JSON card document.
	MediaTypeJSON
	// MediaTypePNG is a PNG image with the card embedded in a text chunk.
	MediaTypePNG
	// MediaTypeWebP is a WebP image with the card embedded in EXIF data.
	MediaTypeWebP
)

// MediaType is the declared type of a card source.
//
//go:generate stringer -type=MediaType
type MediaType int

// ContentType returns the canonical media type string.
func (m MediaType) ContentType() string {
	switch m {
	case MediaTypeJSON:
		return "application/json"
	case MediaTypePNG:
		return "image/png"
	case MediaTypeWebP:
		return "image/webp"
	default:
		panic(fmt.Sprintf("unhandled media type %d", m))
	}
}

// ParseMediaType maps a media type string to its MediaType. Anything outside
// the three supported values is a contract violation and returns an
// UnsupportedMediaTypeError.
func ParseMediaType(s string) (MediaType, error) {
	switch s {
	case "application/json":
		return MediaTypeJSON, nil
	case "image/png":
		return MediaTypePNG, nil
	case "image/webp":
		return MediaTypeWebP, nil
	default:
		return MediaTypeInvalid, &UnsupportedMediaTypeError{Declared: s}
	}
}

// MediaTypeFromPath infers the media type from the filename extension.
func MediaTypeFromPath(path string) (MediaType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return MediaTypeJSON, nil
	case ".png":
		return MediaTypePNG, nil
	case ".webp":
		return MediaTypeWebP, nil
	default:
		return MediaTypeInvalid, &UnsupportedMediaTypeError{Declared: ext}
	}
}

// Extensions returns the filename extensions accepted by MediaTypeFromPath,
// for use in file pickers and directory filters.
func Extensions() []string {
	return []string{".json", ".png", ".webp"}
}
