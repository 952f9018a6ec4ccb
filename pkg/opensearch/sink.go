package opensearch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/formrequest/pkg/paramlog"
)

// LogSink stores parameter log entries with the bulk API. Wrap it in
// paramlog.NewAsyncSink to keep indexing off the request path.
type LogSink struct {
	client *opensearch.Client
	prefix string
	daily  bool
	base   string
}

var _ paramlog.BatchSink = (*LogSink)(nil)

// NewLogSink returns a sink indexing into client using the naming in cfg.
func NewLogSink(client *opensearch.Client, cfg Config) *LogSink {
	return &LogSink{client: client, prefix: cfg.IndexPrefix, daily: cfg.DailyIndex}
}

// Configure derives the index name from the log destination.
func (s *LogSink) Configure(destination, _ string) error {
	base := strings.ToLower(strings.TrimSpace(s.prefix + destination))
	if base == "" {
		return ErrInvalidIndex
	}
	s.base = base
	return nil
}

// Index returns the index an entry is written to.
func (s *LogSink) Index(e paramlog.Entry) string {
	if s.daily && !e.Time.IsZero() {
		return s.base + "-" + e.Time.UTC().Format("2006.01.02")
	}
	return s.base
}

type bulkAction struct {
	Index struct {
		Index string `json:"_index"`
	} `json:"index"`
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// AppendBatch writes entries in a single bulk request.
func (s *LogSink) AppendBatch(ctx context.Context, entries []paramlog.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if s.base == "" {
		return ErrInvalidIndex
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, e := range entries {
		var action bulkAction
		action.Index.Index = s.Index(e)
		if err := enc.Encode(action); err != nil {
			return fmt.Errorf("encode bulk action: %w", err)
		}
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode log entry: %w", err)
		}
	}

	res, err := s.client.Bulk(bytes.NewReader(body.Bytes()), s.client.Bulk.WithContext(ctx))
	if err != nil {
		return errors.Join(ErrBulkFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrBulkFailed, res.Status())
	}

	var out bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return errors.Join(ErrBulkFailed, err)
	}
	if !out.Errors {
		return nil
	}

	failed := 0
	var first string
	for _, item := range out.Items {
		for _, result := range item {
			if result.Status < 300 {
				continue
			}
			if failed == 0 {
				first = result.Error.Type + ": " + result.Error.Reason
			}
			failed++
		}
	}
	return fmt.Errorf("%w: %d of %d documents rejected, first: %s", ErrBulkFailed, failed, len(entries), first)
}
