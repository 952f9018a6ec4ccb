package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/config"
	"github.com/dmitrymomot/formrequest/pkg/httpserver"
	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/paramlog"
	"github.com/dmitrymomot/formrequest/pkg/validator"
)

type testApp struct {
	*app
	params *bytes.Buffer
}

func newTestApp(t *testing.T, checks ...httpserver.Check) testApp {
	t.Helper()
	store := newMemberStore()

	var buf bytes.Buffer
	params, err := paramlog.New(config.DefaultRequest(), paramlog.NewWriterSink(&buf), paramlog.WithLogger(logger.Discard()))
	require.NoError(t, err)

	engine := validator.New(validator.WithTableChecker(store), validator.WithLogger(logger.Discard()))
	return testApp{
		app: &app{
			lc: formrequest.New(config.DefaultRequest(), engine,
				formrequest.WithLogger(logger.Discard()),
				formrequest.WithParamLogger(params),
			),
			store:       store,
			log:         logger.Discard(),
			checks:      checks,
			maxJSONSize: 1 << 20,
		},
		params: &buf,
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestSignup(t *testing.T) {
	t.Parallel()

	const body = `{"name":" Jane \u0000  Doe ","email":" Jane..Doe@Example.COM ","password":"secret123","password_confirmation":"secret123"}`

	t.Run("creates a member from sanitized input", func(t *testing.T) {
		t.Parallel()
		ta := newTestApp(t)
		rec, env := do(t, ta.routes(), http.MethodPost, "/members", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

		var m member
		require.NoError(t, json.Unmarshal(env.Data, &m))
		assert.Equal(t, "Jane Doe", m.Name)
		assert.Equal(t, "jane.doe@example.com", m.Email)
		assert.Equal(t, "free", m.Plan)
		assert.NotEmpty(t, m.ID)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		t.Parallel()
		ta := newTestApp(t)
		ta.store.Add("Jane", "jane.doe@example.com", "free")

		rec, env := do(t, ta.routes(), http.MethodPost, "/members", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, []string{"The email address has already been taken."}, env.Error.Details["email"])
	})

	t.Run("reports every failing field", func(t *testing.T) {
		t.Parallel()
		ta := newTestApp(t)
		rec, env := do(t, ta.routes(), http.MethodPost, "/members",
			`{"name":"   ","email":"nope","plan":"Gold","password":"short","password_confirmation":"other"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)

		assert.Equal(t, []string{"The name field is required."}, env.Error.Details["name"])
		assert.Equal(t, []string{"The email address field must be a valid email address."}, env.Error.Details["email"])
		assert.Equal(t, []string{"Pick one of the available plans."}, env.Error.Details["plan"])
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("logs masked parameters", func(t *testing.T) {
		t.Parallel()
		ta := newTestApp(t)
		rec, _ := do(t, ta.routes(), http.MethodPost, "/members", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		logged := ta.params.String()
		assert.Contains(t, logged, `"password":"********"`)
		assert.Contains(t, logged, `"password_confirmation":"********"`)
		assert.NotContains(t, logged, "secret123")
	})
}

func TestListMembers(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	for i := range 25 {
		plan := "free"
		if i%5 == 0 {
			plan = "team"
		}
		ta.store.Add(fmt.Sprintf("Member %d", i), fmt.Sprintf("m%d@example.com", i), plan)
	}
	h := ta.routes()

	tests := []struct {
		name      string
		target    string
		wantCount int
		wantPage  float64
		wantTotal float64
	}{
		{"first page", "/members", 20, 1, 25},
		{"page from query", "/members?page=2", 5, 2, 25},
		{"page from route", "/members/page/2", 5, 2, 25},
		{"route page overrides query", "/members/page/1?page=2", 20, 1, 25},
		{"filtered by plan", "/members?plan=team", 5, 1, 5},
		{"past the end", "/members?page=9", 0, 9, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var members []member
			if len(env.Data) > 0 {
				require.NoError(t, json.Unmarshal(env.Data, &members))
			}
			assert.Len(t, members, tt.wantCount)
			assert.Equal(t, tt.wantPage, env.Meta["page"])
			assert.Equal(t, float64(20), env.Meta["pageItemLimit"])
			assert.Equal(t, tt.wantTotal, env.Meta["total"])
		})
	}

	t.Run("invalid page", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/members?page=abc", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, []string{"The page field must be an integer."}, env.Error.Details["page"])
	})
}

func TestProbes(t *testing.T) {
	t.Parallel()

	failing := httpserver.Check{Name: "pg", Fn: func(context.Context) error { return errors.New("down") }}
	h := newTestApp(t, failing).routes()

	rec, _ := do(t, h, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec, _ = do(t, h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestBackendSelection(t *testing.T) {
	t.Parallel()

	t.Run("memory tables", func(t *testing.T) {
		t.Parallel()
		store := newMemberStore()
		tables, checks, closers, err := newTableChecker(context.Background(), appConfig{TableStorage: tablesMemory}, store, logger.Discard())
		require.NoError(t, err)
		assert.Same(t, store, tables)
		assert.Empty(t, checks)
		assert.Empty(t, closers)
	})

	t.Run("unknown tables", func(t *testing.T) {
		t.Parallel()
		_, _, _, err := newTableChecker(context.Background(), appConfig{TableStorage: "sqlite"}, newMemberStore(), logger.Discard())
		assert.ErrorIs(t, err, errUnknownTables)
	})

	t.Run("log sink", func(t *testing.T) {
		t.Parallel()
		sink, checks, _, err := newParamSink(context.Background(), appConfig{ParamLogStorage: storageLog}, logger.Discard())
		require.NoError(t, err)
		assert.IsType(t, &paramlog.SlogSink{}, sink)
		assert.Empty(t, checks)
	})

	t.Run("unknown sink", func(t *testing.T) {
		t.Parallel()
		_, _, _, err := newParamSink(context.Background(), appConfig{ParamLogStorage: "kafka"}, logger.Discard())
		assert.ErrorIs(t, err, errUnknownStorage)
	})
}
