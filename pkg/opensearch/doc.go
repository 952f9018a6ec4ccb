// Package opensearch ships request parameter logs to OpenSearch.
//
// New builds a client from Config and checks the cluster with Healthcheck.
// LogSink implements paramlog.BatchSink on top of the bulk API; each log
// destination maps to an index named IndexPrefix + destination, optionally
// suffixed with the entry date:
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	sink := paramlog.NewAsyncSink(opensearch.NewLogSink(client, cfg), paramlog.AsyncOptions{})
//	defer sink.Close(context.Background())
//
//	plog, err := paramlog.New(requestCfg, sink)
//
// Errors wrap ErrConnectionFailed, ErrHealthcheckFailed or ErrBulkFailed.
package opensearch
