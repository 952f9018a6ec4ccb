package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrequest/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "192.0.2.1:1234", "192.0.2.1"},
		{"cloudflare first", map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Real-IP": "198.51.100.1"}, "10.0.0.1:80", "203.0.113.5"},
		{"digital ocean", map[string]string{"DO-Connecting-IP": "203.0.113.6"}, "10.0.0.1:80", "203.0.113.6"},
		{"forwarded skips garbage", map[string]string{"X-Forwarded-For": "unknown, 198.51.100.7, 10.0.0.2"}, "10.0.0.1:80", "198.51.100.7"},
		{"real ip", map[string]string{"X-Real-IP": "2001:db8::1"}, "10.0.0.1:80", "2001:db8::1"},
		{"invalid header falls through", map[string]string{"CF-Connecting-IP": "not-an-ip"}, "192.0.2.9:80", "192.0.2.9"},
		{"mapped ipv4", nil, "[::ffff:192.0.2.3]:80", "192.0.2.3"},
		{"nothing valid", nil, "garbage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.20")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "198.51.100.20", got)

	req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.1"))
	assert.Equal(t, "203.0.113.1", clientip.Resolve(req))
}
