package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		_, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, ctxID, respID)
	})

	t.Run("reuses a valid id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "req_123-abc")
		assert.Equal(t, "req_123-abc", ctxID)
		assert.Equal(t, "req_123-abc", respID)
	})

	for _, bad := range []string{"a b", "x<script>", strings.Repeat("a", 129)} {
		t.Run("replaces "+bad[:min(len(bad), 10)], func(t *testing.T) {
			t.Parallel()
			ctxID, _ := serve(t, bad)
			assert.NotEqual(t, bad, ctxID)
			assert.NotEmpty(t, ctxID)
		})
	}
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.Extractor))

	log.InfoContext(requestid.WithContext(context.Background(), "abc"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
