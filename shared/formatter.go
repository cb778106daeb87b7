package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const ActivityPublic = "https://www.w3.org/ns/activitystreams#Public"

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}

// ParseHandle splits "nick@domain" or "@nick@domain" into its parts.
func ParseHandle(handle string) (nickname, domain string, err error) {
	handle = strings.TrimPrefix(handle, "@")
	parts := strings.Split(handle, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("not a valid handle: '%s'", handle)
	}
	return parts[0], parts[1], nil
}

// DomainTransport tells apart the overlay networks a destination lives on.
type DomainTransport int

const (
	TransportClearnet DomainTransport = iota
	TransportOnion
	TransportI2p
)

func GetDomainTransport(domain string) DomainTransport {
	if strings.HasSuffix(domain, ".onion") {
		return TransportOnion
	}
	if strings.HasSuffix(domain, ".i2p") {
		return TransportI2p
	}
	return TransportClearnet
}

// SiteUrlForDomain builds the base URL for a remote domain. Onion and i2p
// overlays speak plain HTTP inside the tunnel.
func SiteUrlForDomain(domain string) string {
	if GetDomainTransport(domain) == TransportClearnet {
		return "https://" + domain
	}
	return "http://" + domain
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
