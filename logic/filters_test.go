package logic

import (
	"os"
	"path/filepath"
	"fedi_relay/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeListFile(t *testing.T, lines string) string {
	fn := filepath.Join(t.TempDir(), "list.txt")
	err := os.WriteFile(fn, []byte(lines), 0644)
	assert.Nil(t, err)
	return fn
}

func TestFiltersIsFiltered(t *testing.T) {
	cfg := &shared.Config{
		FilteredWordsFile: writeListFile(t, "# comment\nbadword\nAnotherOne\n"),
	}
	f := NewFilters(cfg, nil)

	assert.True(t, f.IsFiltered("some BADWORD inside"))
	assert.True(t, f.IsFiltered("prefix anotherone suffix"))
	assert.False(t, f.IsFiltered("clean text"))
	// Inline markup must not split a filtered word
	assert.True(t, f.IsFiltered("ba<span>dword</span> here"))
}

func TestFiltersBlockedActorsAndDomains(t *testing.T) {
	cfg := &shared.Config{
		BlockedActorsFile:  writeListFile(t, "spammer@bad.example\n"),
		BlockedDomainsFile: writeListFile(t, "worse.example\n"),
	}
	f := NewFilters(cfg, nil)

	assert.True(t, f.IsBlocked("spammer", "bad.example"))
	assert.True(t, f.IsBlocked("Spammer", "Bad.Example"))
	assert.False(t, f.IsBlocked("friend", "bad.example"))
	assert.True(t, f.IsBlockedDomain("worse.example"))
	assert.True(t, f.IsBlocked("anyone", "worse.example"))
	assert.False(t, f.IsBlockedDomain("fine.example"))
}

func TestFiltersMissingFilesBlockNothing(t *testing.T) {
	f := NewFilters(&shared.Config{}, nil)
	assert.False(t, f.IsFiltered("anything"))
	assert.False(t, f.IsBlocked("anyone", "anywhere.example"))
}

func TestFiltersDangerousMarkup(t *testing.T) {
	f := NewFilters(&shared.Config{}, nil)

	assert.True(t, f.DangerousMarkup(`<p>hi<script>alert(1)</script></p>`))
	assert.True(t, f.DangerousMarkup(`<iframe src="https://x.example"></iframe>`))
	assert.True(t, f.DangerousMarkup(`<a href="javascript:alert(1)">x</a>`))
	assert.False(t, f.DangerousMarkup(`<p>plain <b>bold</b> text</p>`))
}

func TestFiltersInvalidCiphertext(t *testing.T) {
	f := NewFilters(&shared.Config{}, nil)
	assert.True(t, f.InvalidCiphertext("-----BEGIN PGP MESSAGE-----\nxyz"))
	assert.False(t, f.InvalidCiphertext("just words"))
}
