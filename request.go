package formrequest

import (
	"context"
	"maps"
	"net/http"

	"github.com/dmitrymomot/formrequest/pkg/entity"
	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/pagination"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

// Request is implemented by every form request. Inputs declares the fields
// and their rules; Bind reads the validated values into the request.
type Request interface {
	Inputs() []*input.Input
	Bind(data *values.Map) error
}

// Authorizer decides whether the request may proceed. Requests without it
// are always authorized.
type Authorizer interface {
	Authorize(ctx context.Context, p *Payload) bool
}

// UnauthorizedMessenger supplies the message key and message reported when
// authorization fails. Empty values fall back to configuration.
type UnauthorizedMessenger interface {
	UnauthorizedMessage() (key, message string)
}

// AdditionalDataRequester names keys read from the route collaborator and
// merged into the data before validation.
type AdditionalDataRequester interface {
	AdditionalData() []string
}

// PreValidator runs after the inputs are declared and before additional
// data is merged. It may modify p.Data.
type PreValidator interface {
	PrepareForValidation(ctx context.Context, p *Payload) error
}

// PostValidator runs after validation succeeds.
type PostValidator interface {
	PassedValidation(ctx context.Context, validated *values.Map) error
}

// PreBinder runs right before Bind.
type PreBinder interface {
	BeforeBind(ctx context.Context, validated *values.Map) error
}

// PostBinder runs right after Bind.
type PostBinder interface {
	AfterBind(ctx context.Context, validated *values.Map) error
}

// ParameterLogger forces parameter logging for one request type regardless
// of configuration.
type ParameterLogger interface {
	LogParameters() bool
}

// Payload is the raw input of one request.
type Payload struct {
	// HTTP is the originating request. It may be nil outside HTTP handlers.
	HTTP *http.Request
	// Data is the validation input. Hooks may modify it before validation.
	Data map[string]any
	// Route supplies additional data by name. It may be nil.
	Route RouteInput
}

// RouteInput is the route/query collaborator.
type RouteInput interface {
	Input(name string) (any, bool)
}

// RouteMap adapts a map to RouteInput.
type RouteMap map[string]any

func (m RouteMap) Input(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

type validatedHolder interface {
	setValidated(data *values.Map)
}

// Base stores the validated data of a request. Embed it to get
// Validated and Entity.
type Base struct {
	validated *values.Map
}

func (b *Base) setValidated(data *values.Map) {
	b.validated = data
}

// Validated returns the validated data, or an empty map before binding.
func (b *Base) Validated() *values.Map {
	if b.validated == nil {
		return values.New(nil)
	}
	return b.validated
}

// Entity snapshots the validated data merged with extra. Later maps win.
func (b *Base) Entity(extra ...map[string]any) *entity.Entity {
	data := b.Validated().All()
	if data == nil {
		data = make(map[string]any)
	}
	for _, m := range extra {
		maps.Copy(data, m)
	}
	return entity.New(data)
}

// PageItemLimiter overrides the configured page size of a paginated request.
type PageItemLimiter interface {
	DefaultPageItemLimit() int
}

// StartPositioner shifts the start position of a paginated request.
type StartPositioner interface {
	StartPositionOffset() int
}

type paginated interface {
	setPagination(state pagination.State)
}

// Pagination adds the page input and page arithmetic to a request.
// The page field is declared and merged from the route automatically.
type Pagination struct {
	state pagination.State
}

func (p *Pagination) setPagination(state pagination.State) {
	p.state = state
}

// Page returns the bound page, 1 when absent.
func (p *Pagination) Page() int { return p.Pagination().Page }

// PageItemLimit returns the page size.
func (p *Pagination) PageItemLimit() int { return p.state.Limit() }

// Offset returns the number of items before the current page.
func (p *Pagination) Offset() int { return p.state.Offset() }

// Start returns the first item index shifted by extra.
func (p *Pagination) Start(extra int) int { return p.state.Start(extra) }

// End returns the last item index shifted by extra.
func (p *Pagination) End(extra int) int { return p.state.End(extra) }

// Pagination returns the normalized pagination state.
func (p *Pagination) Pagination() pagination.State {
	return pagination.New(p.state.Page, p.state.PageItemLimit, p.state.StartPositionOffset)
}

// PaginationEntry returns the values a paginated request adds to its entity.
func (p *Pagination) PaginationEntry() map[string]any {
	return p.state.Entry()
}
