package formrequest

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/formrequest/pkg/config"
	"github.com/dmitrymomot/formrequest/pkg/i18n"
	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/pagination"
	"github.com/dmitrymomot/formrequest/pkg/paramlog"
	"github.com/dmitrymomot/formrequest/pkg/validator"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

// Lifecycle runs form requests through authorization, validation and
// binding. It is safe for concurrent use; all per-request state lives in
// the Request and Payload.
type Lifecycle struct {
	cfg        config.Request
	engine     *validator.Engine
	params     *paramlog.Logger
	translator func(ctx context.Context) input.Translator
	log        *slog.Logger
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithParamLogger enables the parameter logging phase.
func WithParamLogger(p *paramlog.Logger) Option {
	return func(l *Lifecycle) { l.params = p }
}

// WithTranslator sets a fixed translator for attribute names, messages and
// the unauthorized message key.
func WithTranslator(tr input.Translator) Option {
	return func(l *Lifecycle) {
		if tr != nil {
			l.translator = func(context.Context) input.Translator { return tr }
		}
	}
}

// WithI18n translates with the locale stored in the request context.
func WithI18n(t *i18n.Translator) Option {
	return func(l *Lifecycle) {
		if t != nil {
			l.translator = func(ctx context.Context) input.Translator { return t.ForContext(ctx) }
		}
	}
}

// WithLogger sets the logger for phase transitions and failures.
func WithLogger(log *slog.Logger) Option {
	return func(l *Lifecycle) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a lifecycle. A nil engine gets validator.New().
func New(cfg config.Request, engine *validator.Engine, opts ...Option) *Lifecycle {
	if engine == nil {
		engine = validator.New()
	}
	l := &Lifecycle{
		cfg:        cfg,
		engine:     engine,
		translator: func(context.Context) input.Translator { return nil },
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the configuration the lifecycle was created with.
func (l *Lifecycle) Config() config.Request {
	return l.cfg
}

// Handle runs every phase for req in order: parameter logging,
// pre-validation, authorization, input declaration, additional data merge,
// validation, post-validation, pre-bind, bind and post-bind. It returns an
// *AuthorizationError, a ValidationError, or the first hook error.
func (l *Lifecycle) Handle(ctx context.Context, req Request, p *Payload) error {
	if req == nil {
		return ErrNilRequest
	}
	if p == nil {
		p = &Payload{}
	}
	if p.Data == nil {
		p.Data = make(map[string]any)
	}

	name := requestName(req)
	log := l.log.With(logger.Component("formrequest"), logger.Request(name))
	tr := l.translator(ctx)

	l.logParameters(ctx, req, p)

	if hook, ok := req.(PreValidator); ok {
		if err := hook.PrepareForValidation(ctx, p); err != nil {
			return fmt.Errorf("formrequest: prepare for validation: %w", err)
		}
	}

	if auth, ok := req.(Authorizer); ok && !auth.Authorize(ctx, p) {
		err := &AuthorizationError{Message: l.unauthorizedMessage(req, tr)}
		log.WarnContext(ctx, "request is not authorized", logger.Event("authorization"))
		return err
	}

	inputs := req.Inputs()
	additional := additionalKeys(req)
	if _, ok := req.(paginated); ok {
		if !declares(inputs, pagination.PageKey) {
			inputs = append(inputs, pagination.PageInput())
		}
		if !slices.Contains(additional, pagination.PageKey) {
			additional = append(additional, pagination.PageKey)
		}
	}
	log.DebugContext(ctx, "inputs declared", logger.Event("input_declaration"), slog.Int("inputs", len(inputs)))

	data := mergeAdditional(p, additional)

	validated, err := l.engine.Validate(ctx, data, input.Collect(tr, inputs...), tr)
	if err != nil {
		if errs := validator.ExtractValidationErrors(err); errs != nil {
			log.InfoContext(ctx, "request validation failed",
				logger.Event("validation"),
				logger.Fields(errs.Fields()),
			)
			return ValidationErrorFrom(errs)
		}
		return fmt.Errorf("formrequest: validate: %w", err)
	}
	snapshot := values.New(validated)
	log.DebugContext(ctx, "request validated", logger.Event("validation"))

	if hook, ok := req.(PostValidator); ok {
		if err := hook.PassedValidation(ctx, snapshot); err != nil {
			return fmt.Errorf("formrequest: passed validation: %w", err)
		}
	}
	if hook, ok := req.(PreBinder); ok {
		if err := hook.BeforeBind(ctx, snapshot); err != nil {
			return fmt.Errorf("formrequest: before bind: %w", err)
		}
	}

	if holder, ok := req.(validatedHolder); ok {
		holder.setValidated(snapshot)
	}
	if pg, ok := req.(paginated); ok {
		pg.setPagination(l.paginationState(req, snapshot))
	}
	if err := req.Bind(snapshot); err != nil {
		return fmt.Errorf("formrequest: bind: %w", err)
	}

	if hook, ok := req.(PostBinder); ok {
		if err := hook.AfterBind(ctx, snapshot); err != nil {
			return fmt.Errorf("formrequest: after bind: %w", err)
		}
	}
	log.DebugContext(ctx, "request bound", logger.Event("bind"))
	return nil
}

func (l *Lifecycle) logParameters(ctx context.Context, req Request, p *Payload) {
	if l.params == nil {
		return
	}
	if override, ok := req.(ParameterLogger); ok && override.LogParameters() {
		l.params.Write(ctx, p.HTTP, p.Data)
		return
	}
	l.params.Log(ctx, p.HTTP, p.Data)
}

// unauthorizedMessage resolves the message key through the translator, then
// the plain message. Request values win over configuration.
func (l *Lifecycle) unauthorizedMessage(req Request, tr input.Translator) string {
	key, message := l.cfg.UnauthorizedMessageKey, l.cfg.UnauthorizedMessage
	if m, ok := req.(UnauthorizedMessenger); ok {
		reqKey, reqMessage := m.UnauthorizedMessage()
		if reqKey != "" {
			key = reqKey
		}
		if reqMessage != "" {
			message = reqMessage
		}
	}

	if key != "" && tr != nil {
		if translated := tr.Translate(key); translated != "" && translated != key {
			return translated
		}
	}
	return message
}

func (l *Lifecycle) paginationState(req Request, data *values.Map) pagination.State {
	limit := l.cfg.PageItemLimit
	if p, ok := req.(PageItemLimiter); ok {
		if v := p.DefaultPageItemLimit(); v > 0 {
			limit = v
		}
	}
	start := 0
	if p, ok := req.(StartPositioner); ok {
		start = p.StartPositionOffset()
	}
	return pagination.New(data.Int(pagination.PageKey, 1), limit, start)
}

// mergeAdditional copies p.Data and overlays the named route values, which
// take precedence over body values with the same key.
func mergeAdditional(p *Payload, keys []string) map[string]any {
	data := maps.Clone(p.Data)
	if p.Route == nil {
		return data
	}
	for _, key := range keys {
		if v, ok := p.Route.Input(key); ok {
			data[key] = v
		}
	}
	return data
}

func additionalKeys(req Request) []string {
	if r, ok := req.(AdditionalDataRequester); ok {
		return slices.Clone(r.AdditionalData())
	}
	return nil
}

func declares(inputs []*input.Input, key string) bool {
	return slices.ContainsFunc(inputs, func(in *input.Input) bool {
		return in != nil && in.KeyName() == key
	})
}

func requestName(req Request) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", req), "*")
}
