package logic

import (
	"fedi_relay/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveLongWords(t *testing.T) {
	longWord := strings.Repeat("x", 41)
	in := "short " + longWord + " words"
	assert.Equal(t, "short words", removeLongWords(in))

	okWord := strings.Repeat("y", 40)
	in = "short " + okWord + " words"
	assert.Equal(t, in, removeLongWords(in))
}

func TestCollapseRepeatedWords(t *testing.T) {
	in := strings.TrimSpace(strings.Repeat("spam ", 10)) + " end"
	out := collapseRepeatedWords(in)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("spam ", 6))+" end", out)

	in = "one two two three"
	assert.Equal(t, in, collapseRepeatedWords(in))
}

func TestStripFormatting(t *testing.T) {
	in := "<p>some <b>bold</b> and <em>italic</em> text</p>"
	assert.Equal(t, "<p>some bold and italic text</p>", stripFormatting(in))
}

func TestVideoToNote(t *testing.T) {
	obj := dto.NewRawObject(map[string]any{
		"id":   "https://tube.example/videos/objects/1",
		"type": "Video",
		"name": "cats",
		"url":  "https://tube.example/w/1",
	})
	videoToNote(obj)
	assert.Equal(t, "Note", obj.MustGetString("type"))
	assert.Equal(t, "cats https://tube.example/w/1", obj.MustGetString("content"))

	note := dto.NewRawObject(map[string]any{"type": "Note", "content": "hi"})
	videoToNote(note)
	assert.Equal(t, "hi", note.MustGetString("content"))
}
