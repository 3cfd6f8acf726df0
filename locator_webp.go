// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"errors"
	"fmt"

	exif "github.com/dsoprea/go-exif/v3"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
)

const userCommentTagName = "UserComment"

// locateWebPUserComment scans data for an embedded EXIF blob and normalizes
// its UserComment entry. ErrNoMetadata when the file carries no EXIF or no
// UserComment entry.
func locateWebPUserComment(data []byte) (*userComment, error) {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return nil, ErrNoMetadata
		}
		return nil, fmt.Errorf("extracting exif: %w", err)
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, newMalformedPayloadError(fmt.Errorf("parsing exif: %w", err))
	}

	for _, entry := range entries {
		if entry.TagName != userCommentTagName {
			continue
		}
		if uc := newUserComment(entry.Value); uc != nil {
			return uc, nil
		}
	}

	return nil, ErrNoMetadata
}

// newUserComment maps the EXIF library's UserComment representations onto
// the {description, value[]} shape the decode strategies probe. A comment
// with an undeclared character encoding keeps its raw bytes in the value
// list but reports its description as "Undefined", matching how EXIF
// readers present such comments.
func newUserComment(v any) *userComment {
	switch vv := v.(type) {
	case string:
		return &userComment{description: vv, values: []string{vv}}
	case []byte:
		s := string(trimNulls(vv))
		return &userComment{description: s, values: []string{s}}
	case exifundefined.Tag9286UserComment:
		s := string(trimNulls(vv.EncodingBytes))
		desc := s
		if vv.EncodingType != exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII {
			desc = undefinedSentinel
		}
		return &userComment{description: desc, values: []string{s}}
	default:
		return nil
	}
}
