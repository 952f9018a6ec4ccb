// Package handler turns form requests into http.HandlerFuncs.
//
// Wrap allocates a fresh request value per call, collects the query and
// body with pkg/binder, runs the formrequest.Lifecycle and then calls the
// typed handler:
//
//	lc := formrequest.New(cfg, validator.New())
//
//	r := chi.NewRouter()
//	r.Post("/teams/{team}/members", handler.Wrap(lc,
//		func(ctx handler.Context, req *AddMemberRequest) handler.Response {
//			member, err := members.Add(ctx, req.Team, req.Email)
//			if err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(member, handler.WithJSONStatus(http.StatusCreated))
//		},
//	))
//
// # Errors
//
// The default error handler renders JSON:
//
//   - *formrequest.AuthorizationError: 403, code "unauthorized"
//   - formrequest.ValidationError: 422, code "validation_error" with field details
//   - malformed bodies: 400; oversized bodies: 413; unsupported content types: 415
//   - HTTPError: its code and key
//   - anything else: 500 without the error text
//
// Replace it with WithErrorHandler. Custom context types are supported
// through WithContextFactory, and Decorators wrap the typed handler.
package handler
