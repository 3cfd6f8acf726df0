package character

import (
	"testing"

	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	qt "github.com/frankban/quicktest"
)

func TestNewUserComment(t *testing.T) {
	c := qt.New(t)

	c.Run("plain string", func(c *qt.C) {
		uc := newUserComment(`{"name":"A"}`)
		c.Assert(uc, qt.IsNotNil)
		c.Assert(uc.description, qt.Equals, `{"name":"A"}`)
		c.Assert(uc.values, qt.DeepEquals, []string{`{"name":"A"}`})
	})

	c.Run("byte slice with padding", func(c *qt.C) {
		uc := newUserComment([]byte("\x00\x00hi\x00"))
		c.Assert(uc, qt.IsNotNil)
		c.Assert(uc.description, qt.Equals, "hi")
	})

	c.Run("ascii user comment", func(c *qt.C) {
		uc := newUserComment(exifundefined.Tag9286UserComment{
			EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII,
			EncodingBytes: []byte(`{"name":"A"}`),
		})
		c.Assert(uc, qt.IsNotNil)
		c.Assert(uc.description, qt.Equals, `{"name":"A"}`)
	})

	c.Run("undeclared encoding reports Undefined", func(c *qt.C) {
		uc := newUserComment(exifundefined.Tag9286UserComment{
			EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_UNDEFINED,
			EncodingBytes: []byte("123,34,110"),
		})
		c.Assert(uc, qt.IsNotNil)
		c.Assert(uc.description, qt.Equals, undefinedSentinel)
		c.Assert(uc.values, qt.DeepEquals, []string{"123,34,110"})
	})

	c.Run("unusable value", func(c *qt.C) {
		c.Assert(newUserComment(42), qt.IsNil)
	})
}

func TestLocateWebPUserCommentNoExif(t *testing.T) {
	c := qt.New(t)

	// A RIFF header with no EXIF blob anywhere.
	data := append([]byte("RIFF\x04\x00\x00\x00WEBP"), make([]byte, 64)...)
	_, err := locateWebPUserComment(data)
	c.Assert(err, qt.ErrorIs, ErrNoMetadata)
}
