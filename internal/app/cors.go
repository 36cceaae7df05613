package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a browser origin matches one of the
// allowed_origins patterns from the config. Patterns are compared against the
// host[:port] part of the origin and may use a "*." subdomain wildcard or a
// ":*" port wildcard.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		if matchesHost(pattern, host) {
			return true
		}
	}
	return false
}

func matchesHost(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
