package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHandle(t *testing.T) {
	nick, domain, err := ParseHandle("alice@b.example")
	assert.Nil(t, err)
	assert.Equal(t, "alice", nick)
	assert.Equal(t, "b.example", domain)

	nick, domain, err = ParseHandle("@bob@c.example")
	assert.Nil(t, err)
	assert.Equal(t, "bob", nick)
	assert.Equal(t, "c.example", domain)

	_, _, err = ParseHandle("not-a-handle")
	assert.NotNil(t, err)
	_, _, err = ParseHandle("@@")
	assert.NotNil(t, err)
}

func TestGetDomainTransport(t *testing.T) {
	assert.Equal(t, TransportClearnet, GetDomainTransport("b.example"))
	assert.Equal(t, TransportOnion, GetDomainTransport("abcdef.onion"))
	assert.Equal(t, TransportI2p, GetDomainTransport("site.i2p"))
}

func TestSiteUrlForDomain(t *testing.T) {
	assert.Equal(t, "https://b.example", SiteUrlForDomain("b.example"))
	assert.Equal(t, "http://abcdef.onion", SiteUrlForDomain("abcdef.onion"))
	assert.Equal(t, "http://site.i2p", SiteUrlForDomain("site.i2p"))
}

func TestGetHostName(t *testing.T) {
	host, err := GetHostName("https://b.example:8443/users/alice")
	assert.Nil(t, err)
	assert.Equal(t, "b.example", host)
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	res := TruncateWithEllipsis("this is a longer piece of text", 12)
	assert.True(t, len([]rune(res)) <= 13)
	assert.Contains(t, res, "…")
}
