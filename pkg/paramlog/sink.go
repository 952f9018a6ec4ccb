package paramlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrymomot/formrequest/pkg/logger"
)

// Entry is one logged request.
type Entry struct {
	Channel string         `json:"channel"`
	Time    time.Time      `json:"@timestamp"`
	Params  map[string]any `json:"params"`
	Line    string         `json:"message"`
}

// Sink receives entries. Configure is called once with the destination
// channel and line format before the first Append.
type Sink interface {
	Configure(destination, format string) error
	Append(ctx context.Context, e Entry) error
	Flush(ctx context.Context) error
}

// SlogSink writes each entry as an info record.
type SlogSink struct {
	log     *slog.Logger
	channel string
}

// NewSlogSink returns a sink writing through log, or slog.Default() when nil.
func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{log: logger.OrDefault(log)}
}

func (s *SlogSink) Configure(destination, _ string) error {
	if destination == "" {
		return ErrInvalidChannel
	}
	s.channel = destination
	return nil
}

func (s *SlogSink) Append(ctx context.Context, e Entry) error {
	s.log.InfoContext(ctx, e.Line, logger.Destination(s.channel))
	return nil
}

func (s *SlogSink) Flush(context.Context) error { return nil }

// WriterSink writes one line per entry.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Configure(string, string) error { return nil }

func (s *WriterSink) Append(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, e.Line+"\n")
	return err
}

// Flush syncs the writer when it supports it.
func (s *WriterSink) Flush(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch w := s.w.(type) {
	case interface{ Sync() error }:
		return w.Sync()
	case interface{ Flush() error }:
		return w.Flush()
	}
	return nil
}

// FileSink appends lines to a file.
type FileSink struct {
	*WriterSink
	file *os.File
}

// NewFileSink opens path for appending, creating it when missing.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("paramlog: open %s: %w", path, err)
	}
	return &FileSink{WriterSink: NewWriterSink(f), file: f}, nil
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.Flush(context.Background()); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}
