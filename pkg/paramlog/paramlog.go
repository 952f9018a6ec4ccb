package paramlog

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/dmitrymomot/formrequest/pkg/config"
	"github.com/dmitrymomot/formrequest/pkg/logger"
)

// Logger records request parameters to a Sink.
type Logger struct {
	enabled  bool
	channel  string
	format   string
	fields   []string
	maskKeys []string
	maskText string
	sink     Sink
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithLogger sets the logger used to report sink failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Logger) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Logger) {
		if now != nil {
			p.now = now
		}
	}
}

// New configures sink with the destination and format of cfg.
func New(cfg config.Request, sink Sink, opts ...Option) (*Logger, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	for _, name := range cfg.AddParameters {
		if !IsField(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	p := &Logger{
		enabled:  cfg.LoggingParameters,
		channel:  cfg.LoggingDirectly,
		format:   cfg.LogFormat,
		fields:   cfg.AddParameters,
		maskKeys: cfg.MaskingParameters,
		maskText: cfg.MaskingText,
		sink:     sink,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.format == "" {
		p.format = DefaultFormat
	}

	if err := sink.Configure(p.channel, p.format); err != nil {
		return nil, fmt.Errorf("paramlog: configure sink: %w", err)
	}
	return p, nil
}

// Enabled reports whether parameter logging is switched on by configuration.
func (p *Logger) Enabled() bool {
	return p != nil && p.enabled
}

// Entry builds the logged form of params: context fields added, then
// sensitive keys masked. Context fields are skipped when r is nil.
func (p *Logger) Entry(r *http.Request, params map[string]any) (Entry, error) {
	now := p.now()

	data := maps.Clone(params)
	if data == nil {
		data = make(map[string]any, len(p.fields))
	}
	if r != nil {
		for _, name := range p.fields {
			data[name] = contextFields[name](r, now)
		}
	}
	data = Mask(data, p.maskKeys, p.maskText)

	line, err := FormatLine(p.format, data, p.channel, now)
	if err != nil {
		return Entry{}, fmt.Errorf("paramlog: format line: %w", err)
	}
	return Entry{Channel: p.channel, Time: now, Params: data, Line: line}, nil
}

// Log records params when logging is enabled.
func (p *Logger) Log(ctx context.Context, r *http.Request, params map[string]any) {
	if !p.Enabled() {
		return
	}
	p.Write(ctx, r, params)
}

// Write records params regardless of configuration. Errors are logged and
// swallowed.
func (p *Logger) Write(ctx context.Context, r *http.Request, params map[string]any) {
	if p == nil {
		return
	}
	entry, err := p.Entry(r, params)
	if err == nil {
		err = p.sink.Append(ctx, entry)
	}
	if err != nil {
		p.log.ErrorContext(ctx, "failed to log request parameters",
			logger.Component("paramlog"),
			logger.Destination(p.channel),
			logger.Error(err),
		)
	}
}

// Flush flushes the sink, logging failures.
func (p *Logger) Flush(ctx context.Context) {
	if p == nil {
		return
	}
	if err := p.sink.Flush(ctx); err != nil {
		p.log.ErrorContext(ctx, "failed to flush request parameter log",
			logger.Component("paramlog"),
			logger.Destination(p.channel),
			logger.Error(err),
		)
	}
}
