// Package paramlog records the parameters of incoming requests.
//
// A Logger snapshots the request data, adds the configured context fields
// (url, method, ip, user_agent, datetime, request_id), masks sensitive keys
// at any depth and renders a line from the configured format. The entry is
// handed to a Sink. Sink failures are logged and never returned to the
// caller.
//
//	plog, err := paramlog.New(cfg, paramlog.NewSlogSink(log))
//	...
//	plog.Log(ctx, r, data)
//
// Sinks: SlogSink writes through log/slog, WriterSink and FileSink write one
// line per entry, AsyncSink batches entries for a BatchSink such as the
// OpenSearch sink.
package paramlog
