package app

import (
	"net/url"
	"strings"
)

// originAllowed builds the CORS origin check from the configured patterns.
// Patterns match the host part of the Origin header: exact, "*.example.com"
// for subdomains, or "localhost:*" for any port.
func originAllowed(patterns []string) func(string) bool {
	return func(origin string) bool {
		host := originHost(origin)
		for _, p := range patterns {
			if hostMatches(p, host) {
				return true
			}
		}
		return false
	}
}

func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

func hostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	}
	return false
}
