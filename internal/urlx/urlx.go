// Package urlx normalizes URL-like strings into bare host names.
// Every filter stage compares against the same normalized form, so the
// extraction rules live in one place.
package urlx

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the lower-cased host of a URL-like string, with any
// port stripped. Input without an http:// or https:// prefix is treated as an
// http URL so bare hostnames parse. Extraction never fails: empty or
// unparsable input yields the empty string.
func ExtractDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
