package logic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostLogCapsAtCapacity(t *testing.T) {
	pl := NewPostLog()
	for i := 0; i < 40; i++ {
		pl.Add("entry %d", i)
	}
	entries := pl.Entries()
	assert.Equal(t, postLogCapacity, len(entries))
	// Oldest entries are gone; the newest is last
	assert.True(t, strings.HasSuffix(entries[0], fmt.Sprintf("entry %d", 40-postLogCapacity)))
	assert.True(t, strings.HasSuffix(entries[len(entries)-1], "entry 39"))
}

func TestPostLogEntriesReturnsCopy(t *testing.T) {
	pl := NewPostLog()
	pl.Add("one")
	entries := pl.Entries()
	entries[0] = "mutated"
	assert.NotEqual(t, "mutated", pl.Entries()[0])
}
