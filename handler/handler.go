package handler

import (
	"net/http"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/binder"
)

// HandlerFunc handles a form request that already passed the lifecycle.
// C must implement the Context interface, R is the form request type.
//
//	handler.Wrap(lc, func(ctx handler.Context, req *CreateUserRequest) handler.Response {
//		user := createUser(req.Name, req.Age)
//		return handler.JSON(user, handler.WithJSONStatus(http.StatusCreated))
//	})
type HandlerFunc[C Context, R any] func(ctx C, req *R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from collecting, the lifecycle or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binderOpts     []binder.Option
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinderOptions tunes how the query and body are collected.
func WithBinderOptions[C Context, R any](opts ...binder.Option) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binderOpts = append(c.binderOpts, opts...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts a HandlerFunc to http.HandlerFunc. Every call allocates a
// fresh R, collects the query and body, and runs lc before h. Lifecycle and
// collection errors go to the error handler, which by default renders them
// as JSON.
func Wrap[C Context, R any, PR interface {
	*R
	formrequest.Request
}](lc *formrequest.Lifecycle, h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: NewErrorHandler[C](nil),
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		payload, err := formrequest.FromHTTP(r, cfg.binderOpts...)
		if err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		req := new(R)
		if err := lc.Handle(ctx, PR(req), payload); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
