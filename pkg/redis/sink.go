package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formrequest/pkg/paramlog"
)

// LogSink pushes parameter log entries as JSON onto a Redis list. Wrap it
// in paramlog.NewAsyncSink to keep pushes off the request path.
type LogSink struct {
	client redis.UniversalClient
	prefix string
	maxLen int64
	key    string
}

var _ paramlog.BatchSink = (*LogSink)(nil)

// NewLogSink returns a sink pushing through client using the key naming in cfg.
func NewLogSink(client redis.UniversalClient, cfg Config) *LogSink {
	return &LogSink{client: client, prefix: cfg.KeyPrefix, maxLen: cfg.MaxLen}
}

// Configure derives the list key from the log destination.
func (s *LogSink) Configure(destination, _ string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return ErrInvalidKey
	}
	s.key = s.prefix + destination
	return nil
}

// Key returns the list entries are pushed to.
func (s *LogSink) Key() string { return s.key }

// AppendBatch pushes entries in one pipeline and trims the list to the
// newest MaxLen entries.
func (s *LogSink) AppendBatch(ctx context.Context, entries []paramlog.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if s.key == "" {
		return ErrInvalidKey
	}

	docs := make([]any, 0, len(entries))
	for _, e := range entries {
		doc, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode log entry: %w", err)
		}
		docs = append(docs, doc)
	}

	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, s.key, docs...)
		if s.maxLen > 0 {
			p.LTrim(ctx, s.key, -s.maxLen, -1)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrPushFailed, err)
	}
	return nil
}
