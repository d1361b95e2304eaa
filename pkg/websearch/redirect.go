package websearch

import (
	"net/url"
	"strings"
)

// DecodeRedirectURL recovers the real destination from an engine-emitted
// redirect URL. DuckDuckGo wraps result links as /l/?uddg=<encoded> (and some
// regional variants use kl); the destination is carried percent-encoded in the
// query string. Protocol-relative URLs are normalized to https first. The
// function is best-effort: anything it cannot parse is returned unchanged.
func DecodeRedirectURL(raw string) string {
	candidate := raw
	if strings.HasPrefix(candidate, "//") {
		candidate = "https:" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	if target := query.Get("uddg"); target != "" {
		return target
	}
	if target := query.Get("kl"); target != "" {
		return target
	}

	return candidate
}
