// Package clientip resolves the originating client address of a request.
//
// Proxy headers are consulted in order: CF-Connecting-IP, DO-Connecting-IP,
// the first valid X-Forwarded-For entry, X-Real-IP, then RemoteAddr. Values
// that do not parse as an IP address are skipped.
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

var singleValueHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP"}

// FromRequest returns the client IP, or "" when none can be determined.
func FromRequest(r *http.Request) string {
	for _, h := range singleValueHeaders {
		if ip := parse(r.Header.Get(h)); ip != "" {
			return ip
		}
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			if ip := parse(candidate); ip != "" {
				return ip
			}
		}
	}
	if ip := parse(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by WithContext or Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Resolve prefers the IP stored in the request context and falls back to
// FromRequest.
func Resolve(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return FromRequest(r)
}

// Middleware stores the client IP in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), FromRequest(r))))
	})
}
