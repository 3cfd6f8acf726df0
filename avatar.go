package character

import "encoding/base64"

// avatarDataURI encodes image bytes into a self-contained data URI with the
// correct media type prefix, for use as a fallback avatar. Empty input
// yields an empty reference.
func avatarDataURI(mediaType MediaType, image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return "data:" + mediaType.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(image)
}
