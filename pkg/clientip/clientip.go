package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP of r. Only the given headers are
// trusted, checked in order; comma-separated values (X-Forwarded-For) yield
// their first valid address. With no headers the connection's RemoteAddr is
// used alone, and it is also the fallback. The result is empty when no valid
// address is found.
func FromRequest(r *http.Request, headers ...string) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the canonical form of s, or "" if s is not an IP address.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
