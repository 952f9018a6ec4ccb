package validator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

// TableQuery describes an exists/unique lookup.
type TableQuery struct {
	Table     string
	Column    string
	Value     any
	WhereNull string
}

// TableChecker answers whether a row matching the query exists.
type TableChecker interface {
	Exists(ctx context.Context, q TableQuery) (bool, error)
}

// PasswordChecker verifies the authenticated user's password for a guard.
type PasswordChecker interface {
	CheckPassword(ctx context.Context, guard, password string) (bool, error)
}

// Checker is implemented by custom rule objects.
type Checker interface {
	input.Rule
	Passes(ctx context.Context, attribute string, value any) (bool, error)
}

// Attribute is the view of a key handed to custom rule functions.
type Attribute struct {
	Key     string
	Value   any
	Present bool
	Params  []string
	Data    *values.Map
}

// RuleFunc evaluates a custom named rule.
type RuleFunc func(ctx context.Context, attr Attribute) (bool, error)

// Engine evaluates rule sets. It is safe for concurrent use.
type Engine struct {
	validate  *playground.Validate
	tables    TableChecker
	passwords PasswordChecker
	custom    map[string]RuleFunc
	implicit  map[string]bool
	patterns  *lruCache[string, *regexp.Regexp]
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTableChecker enables exists and unique rules.
func WithTableChecker(tc TableChecker) Option {
	return func(e *Engine) {
		e.tables = tc
	}
}

// WithPasswordChecker enables the current_password rule.
func WithPasswordChecker(pc PasswordChecker) Option {
	return func(e *Engine) {
		e.passwords = pc
	}
}

// WithRule registers a custom rule under name. Implicit rules run even when
// the key is absent.
func WithRule(name string, fn RuleFunc, implicit bool) Option {
	return func(e *Engine) {
		if name == "" || fn == nil {
			return
		}
		e.custom[name] = fn
		if implicit {
			e.implicit[name] = true
		}
	}
}

// WithClock overrides the time source used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		validate: playground.New(playground.WithRequiredStructEnabled()),
		custom:   make(map[string]RuleFunc),
		implicit: maps.Clone(implicitRules),
		patterns: newLRUCache[string, *regexp.Regexp](256),
		now:      time.Now,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	registerValidations(e.validate)

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// field is the evaluation state of one key.
type field struct {
	key      string
	value    any
	present  bool
	numeric  bool
	nullable bool
	data     *values.Map
	set      input.RuleSet
	tr       input.Translator
}

// Validate applies set to data. It returns the declared keys present in data,
// or ValidationErrors when any rule fails.
func (e *Engine) Validate(ctx context.Context, data map[string]any, set input.RuleSet, tr input.Translator) (map[string]any, error) {
	snapshot := values.New(data)
	validated := make(map[string]any, len(set.Keys))
	var errs ValidationErrors

	for _, key := range set.Keys {
		value, present := snapshot.Bind(key)
		if present {
			validated[key] = value
		}

		rules := set.Rules[key]
		if len(rules) == 0 {
			continue
		}

		f := &field{
			key:      key,
			value:    value,
			present:  present,
			numeric:  hasRule(rules, input.RuleNumeric, input.RuleInteger),
			nullable: hasRule(rules, input.RuleNullable),
			data:     snapshot,
			set:      set,
			tr:       tr,
		}

		for _, rule := range rules {
			name := rule.Name()
			if name == input.RuleNullable {
				continue
			}
			implicit := e.implicit[name]
			if !implicit && !f.validatable() {
				continue
			}

			ok, params, err := e.check(ctx, f, rule)
			if err != nil {
				return nil, fmt.Errorf("validate %q rule %q: %w", key, name, err)
			}
			if ok {
				continue
			}

			errs.Add(e.failure(f, rule, params))
			if implicit {
				break
			}
		}
	}

	if !errs.IsEmpty() {
		e.logger.DebugContext(ctx, "validation failed", slog.Any("fields", errs.Fields()))
		return nil, errs
	}
	return validated, nil
}

// validatable reports whether non-implicit rules apply to the value.
func (f *field) validatable() bool {
	if !f.present {
		return false
	}
	if f.value == nil && f.nullable {
		return false
	}
	if s, ok := f.value.(string); ok && isBlank(s) {
		return false
	}
	return true
}

func (e *Engine) check(ctx context.Context, f *field, rule input.Rule) (bool, []string, error) {
	switch r := rule.(type) {
	case input.In:
		return inValues(f.value, r.Values), r.Values, nil
	case input.NotIn:
		return notInValues(f.value, r.Values), r.Values, nil
	case input.Exists:
		ok, err := e.checkTable(ctx, f, r.Table, r.Column, r.WhereNull, true)
		return ok, []string{r.Table, r.Column}, err
	case input.Unique:
		ok, err := e.checkTable(ctx, f, r.Table, r.Column, r.WhereNull, false)
		return ok, []string{r.Table, r.Column}, err
	case Checker:
		ok, err := r.Passes(ctx, f.key, f.value)
		return ok, nil, err
	}

	name := rule.Name()
	params := input.Token(rule.String()).Params()

	if fn, ok := e.custom[name]; ok {
		passed, err := fn(ctx, Attribute{
			Key:     f.key,
			Value:   f.value,
			Present: f.present,
			Params:  params,
			Data:    f.data,
		})
		return passed, params, err
	}

	if fn, ok := presenceRules[name]; ok {
		passed, err := fn(f, params)
		return passed, params, err
	}

	fn, ok := valueRules[name]
	if !ok {
		return false, params, fmt.Errorf("%w: %s", ErrUnsupportedRule, name)
	}
	passed, err := fn(ctx, e, f, params)
	return passed, params, err
}

func (e *Engine) checkTable(ctx context.Context, f *field, table, column, whereNull string, wantExists bool) (bool, error) {
	if e.tables == nil {
		return false, ErrTableCheckerMissing
	}
	if column == "" {
		column = f.key
	}

	subjects := []any{f.value}
	if list, ok := values.ToSlice(f.value); ok {
		subjects = list
	}
	for _, v := range subjects {
		exists, err := e.tables.Exists(ctx, TableQuery{
			Table:     table,
			Column:    column,
			Value:     v,
			WhereNull: whereNull,
		})
		if err != nil {
			return false, err
		}
		if exists != wantExists {
			return false, nil
		}
	}
	return true, nil
}

func hasRule(rules []input.Rule, names ...string) bool {
	return slices.ContainsFunc(rules, func(r input.Rule) bool {
		return slices.Contains(names, r.Name())
	})
}
