// Package httpserver runs form request handlers behind net/http with graceful
// shutdown and readiness probes.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or
// the listener fails. Shutdown waits for in-flight requests and then runs the
// closers registered with WithCloser in reverse order, which is where the
// parameter log sink is flushed and the database pool released:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithCloser("pg", func(context.Context) error { pool.Close(); return nil }),
//		httpserver.WithCloser("paramlog", sink.Close),
//	)
//
//	r := chi.NewRouter()
//	r.Get("/live", httpserver.HealthCheckHandler(log))
//	r.Get("/ready", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "pg", Fn: pg.Healthcheck(pool)},
//	))
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listener errors are joined with ErrStart and shutdown errors with
// ErrShutdown.
package httpserver
