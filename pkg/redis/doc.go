// Package redis connects to Redis and stores parameter log entries in a list.
//
// Config is populated from the environment with github.com/caarlos0/env.
// Connect retries until the server answers a PING, and Healthcheck adapts a
// client into a readiness check for the HTTP server.
//
// LogSink implements paramlog.BatchSink. Each entry is JSON encoded and
// pushed with RPUSH onto KeyPrefix + destination, and the list is trimmed
// to the newest MaxLen entries:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	sink := paramlog.NewAsyncSink(redis.NewLogSink(client, cfg), paramlog.AsyncOptions{})
//	defer sink.Close(context.Background())
//
//	plog, err := paramlog.New(requestCfg, sink)
//
// Errors wrap ErrRedisNotReady, ErrHealthcheckFailed or ErrPushFailed.
package redis
