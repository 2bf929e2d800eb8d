package clientip

import (
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest returns the client address of r, normalized, or "" when none
// of the sources holds a valid IP. Proxy headers are consulted only when
// trustProxy is set, in the order X-Forwarded-For (first valid hop),
// X-Real-IP, then RemoteAddr.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for hop := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parse(hop); ip != "" {
				return ip
			}
		}
		if ip := parse(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}

	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	return parse(r.RemoteAddr)
}

// KeyFunc adapts FromRequest to a per-request key function.
func KeyFunc(trustProxy bool) func(*http.Request) string {
	return func(r *http.Request) string { return FromRequest(r, trustProxy) }
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
