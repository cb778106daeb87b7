package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawObjectDottedPaths(t *testing.T) {
	obj, err := LoadRawObject([]byte(`{
		"id": "https://b.example/users/alice",
		"endpoints": {"sharedInbox": "https://b.example/inbox"},
		"tags": ["a", "b"]
	}`))
	assert.Nil(t, err)

	assert.Equal(t, "https://b.example/inbox", obj.MustGetString("endpoints.sharedInbox"))
	assert.True(t, obj.Has("endpoints.sharedInbox"))
	assert.False(t, obj.Has("endpoints.missing"))

	_, ok := obj.GetString("endpoints")
	assert.False(t, ok)

	list, ok := obj.GetList("tags")
	assert.True(t, ok)
	assert.Len(t, list, 2)

	endpoints, ok := obj.GetObject("endpoints")
	assert.True(t, ok)
	assert.Equal(t, "https://b.example/inbox", endpoints.MustGetString("sharedInbox"))
}

func TestRawObjectSetAndMarshal(t *testing.T) {
	obj := NewRawObject(map[string]any{"type": "Video"})
	obj.Set("type", "Note")
	bytes, err := obj.Marshal()
	assert.Nil(t, err)
	assert.JSONEq(t, `{"type":"Note"}`, string(bytes))
}

func TestParseActivityKind(t *testing.T) {
	assert.Equal(t, KindAnnounce, ParseActivityKind("Announce"))
	assert.Equal(t, KindCreate, ParseActivityKind("Create"))
	assert.Equal(t, KindUnknown, ParseActivityKind("Frobnicate"))
	assert.Equal(t, "Announce", KindAnnounce.String())
}
