package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiRoute looks up out-of-body parameters: chi URL parameters first, then
// the query string.
type ChiRoute struct {
	r *http.Request
}

// Route returns the route lookup for r.
func Route(r *http.Request) ChiRoute {
	return ChiRoute{r: r}
}

// Input returns the named parameter and whether it was present.
func (c ChiRoute) Input(name string) (any, bool) {
	if rctx := chi.RouteContext(c.r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == name && i < len(rctx.URLParams.Values) {
				return rctx.URLParams.Values[i], true
			}
		}
	}

	vs, ok := c.r.URL.Query()[name]
	switch {
	case !ok || len(vs) == 0:
		return nil, false
	case len(vs) == 1:
		return vs[0], true
	}
	list := make([]any, len(vs))
	for i, v := range vs {
		list[i] = v
	}
	return list, true
}

// Params returns every chi URL parameter of the matched route.
func (c ChiRoute) Params() map[string]any {
	out := make(map[string]any)
	rctx := chi.RouteContext(c.r.Context())
	if rctx == nil {
		return out
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}
