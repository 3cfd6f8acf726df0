// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

package character

import (
	"bytes"
	"fmt"

	pngstructure "github.com/dsoprea/go-png-image-structure/v2"
)

// charaKeyword is the reserved tEXt keyword carrying the card payload.
const charaKeyword = "chara"

func isTextChunkType(typ string) bool {
	switch typ {
	case "tEXt", "zTXt", "iTXt":
		return true
	}
	return false
}

// locatePNGPayload splits data into chunks, returns the base64 text of the
// chara tEXt chunk plus the non-text chunks re-encoded into a standalone
// PNG. ErrNoMetadata when no chara chunk exists.
func locatePNGPayload(data []byte) (payload string, residual []byte, err error) {
	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseBytes(data)
	if err != nil {
		return "", nil, newMalformedPayloadError(fmt.Errorf("parsing png: %w", err))
	}
	cs := intfc.(*pngstructure.ChunkSlice)

	var (
		found bool
		keep  []*pngstructure.Chunk
	)
	for _, chunk := range cs.Chunks() {
		typ := string(chunk.Type)
		if isTextChunkType(typ) {
			// Only tEXt carries the NUL-separated plain-text keyword/value
			// pair the chara convention uses; zTXt and iTXt bodies are
			// compressed or structured and no card writer embeds through
			// them. They are still stripped from the residual image.
			if !found && typ == "tEXt" {
				keyword, text, ok := splitTextChunk(chunk.Data)
				if ok && keyword == charaKeyword {
					payload = text
					found = true
				}
			}
			continue
		}
		keep = append(keep, chunk)
	}

	if !found {
		return "", nil, ErrNoMetadata
	}

	var buf bytes.Buffer
	if err := pngstructure.NewChunkSlice(keep).WriteTo(&buf); err != nil {
		return "", nil, fmt.Errorf("re-encoding png: %w", err)
	}

	return payload, buf.Bytes(), nil
}

// splitTextChunk decodes a tEXt chunk body into its keyword/value pair,
// separated by a single NUL byte.
func splitTextChunk(data []byte) (keyword, text string, ok bool) {
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return "", "", false
	}
	return string(data[:i]), string(data[i+1:]), true
}
