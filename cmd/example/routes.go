package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/handler"
	"github.com/dmitrymomot/formrequest/pkg/binder"
	"github.com/dmitrymomot/formrequest/pkg/clientip"
	"github.com/dmitrymomot/formrequest/pkg/httpserver"
	"github.com/dmitrymomot/formrequest/pkg/i18n"
	"github.com/dmitrymomot/formrequest/pkg/requestid"
)

type app struct {
	lc          *formrequest.Lifecycle
	store       *memberStore
	translator  *i18n.Translator
	log         *slog.Logger
	checks      []httpserver.Check
	maxJSONSize int64
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	if a.translator != nil {
		r.Use(i18n.Middleware(a.translator))
	}

	r.Get("/live", httpserver.HealthCheckHandler(a.log))
	r.Get("/ready", httpserver.HealthCheckHandler(a.log, a.checks...))

	errs := handler.NewErrorHandler[handler.Context](a.log)

	r.Post("/members", handler.Wrap[handler.Context, signupRequest](a.lc, a.signup,
		handler.WithBinderOptions[handler.Context, signupRequest](binder.WithMaxJSONSize(a.maxJSONSize)),
		handler.WithErrorHandler[handler.Context, signupRequest](errs),
	))

	list := handler.Wrap[handler.Context, listMembersRequest](a.lc, a.listMembers,
		handler.WithErrorHandler[handler.Context, listMembersRequest](errs),
	)
	r.Get("/members", list)
	r.Get("/members/page/{page}", list)

	return r
}

func (a *app) signup(_ handler.Context, req *signupRequest) handler.Response {
	m := a.store.Add(req.Name, req.Email, req.Plan)
	return handler.JSON(m, handler.WithJSONStatus(http.StatusCreated))
}

func (a *app) listMembers(_ handler.Context, req *listMembersRequest) handler.Response {
	members, total := a.store.List(req.Plan, req.Offset(), req.PageItemLimit())

	meta := req.PaginationEntry()
	meta["total"] = total
	return handler.JSON(members, handler.WithJSONMeta(meta))
}
