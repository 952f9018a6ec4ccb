// Command example serves a small members API built on form requests: signup
// validation with a unique email lookup, paginated listing and parameter
// logging to slog, a file, OpenSearch or Redis. Unique lookups run against
// memory, Postgres or MongoDB.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/config"
	"github.com/dmitrymomot/formrequest/pkg/httpserver"
	"github.com/dmitrymomot/formrequest/pkg/i18n"
	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/mongo"
	"github.com/dmitrymomot/formrequest/pkg/opensearch"
	"github.com/dmitrymomot/formrequest/pkg/paramlog"
	"github.com/dmitrymomot/formrequest/pkg/pg"
	"github.com/dmitrymomot/formrequest/pkg/redis"
	"github.com/dmitrymomot/formrequest/pkg/requestid"
	"github.com/dmitrymomot/formrequest/pkg/validator"
)

var (
	errUnknownStorage = errors.New("unknown parameter log storage")
	errUnknownTables  = errors.New("unknown table lookup storage")
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("example stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg  appConfig
		httpCfg httpserver.Config
		reqCfg  config.Request
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&reqCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithLevel(appCfg.LogLevel),
		logger.WithFormat(appCfg.LogFormat),
		logger.WithContextExtractors(requestid.Extractor),
		logger.WithAttr(logger.Component("example")),
	)

	store := newMemberStore()
	tables, checks, closers, err := newTableChecker(ctx, appCfg, store, log)
	if err != nil {
		return err
	}

	sink, sinkChecks, sinkClosers, err := newParamSink(ctx, appCfg, log)
	if err != nil {
		return err
	}
	checks = append(checks, sinkChecks...)
	closers = append(closers, sinkClosers...)

	params, err := paramlog.New(reqCfg, sink, paramlog.WithLogger(log))
	if err != nil {
		return err
	}

	lcOpts := []formrequest.Option{
		formrequest.WithLogger(log),
		formrequest.WithParamLogger(params),
	}
	var translator *i18n.Translator
	if appCfg.TranslationsPath != "" {
		translator, err = i18n.NewTranslator(ctx, i18n.NewFileAdapter(appCfg.TranslationsPath), i18n.WithLogger(log))
		if err != nil {
			return err
		}
		lcOpts = append(lcOpts, formrequest.WithI18n(translator))
	}

	engine := validator.New(validator.WithTableChecker(tables), validator.WithLogger(log))
	a := &app{
		lc:          formrequest.New(reqCfg, engine, lcOpts...),
		store:       store,
		translator:  translator,
		log:         log,
		checks:      checks,
		maxJSONSize: httpCfg.MaxJSONSize,
	}

	// Closers run in reverse: the parameter log drains before the pool closes.
	srv := httpserver.NewFromConfig(httpCfg, append(closers, httpserver.WithLogger(log))...)
	return srv.Run(ctx, a.routes())
}

func newTableChecker(ctx context.Context, cfg appConfig, store *memberStore, log *slog.Logger) (validator.TableChecker, []httpserver.Check, []httpserver.Option, error) {
	switch cfg.TableStorage {
	case tablesMemory:
		return store, nil, nil, nil

	case tablesPG:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return pg.NewTableChecker(pool, pg.WithQueryTimeout(pgCfg.QueryTimeout)),
			[]httpserver.Check{{Name: "pg", Fn: pg.Healthcheck(pool)}},
			[]httpserver.Option{httpserver.WithCloser("pg", func(context.Context) error {
				pool.Close()
				return nil
			})},
			nil

	case tablesMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, nil, nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		client := db.Client()
		return mongo.NewTableChecker(mongo.DatabaseCollections(db)),
			[]httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(client)}},
			[]httpserver.Option{httpserver.WithCloser("mongo", client.Disconnect)},
			nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", errUnknownTables, cfg.TableStorage)
	}
}

func newParamSink(ctx context.Context, cfg appConfig, log *slog.Logger) (paramlog.Sink, []httpserver.Check, []httpserver.Option, error) {
	switch cfg.ParamLogStorage {
	case storageLog:
		return paramlog.NewSlogSink(log), nil, nil, nil

	case storageFile:
		sink, err := paramlog.NewFileSink(cfg.ParamLogFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return sink, nil, []httpserver.Option{
			httpserver.WithCloser("paramlog", func(context.Context) error { return sink.Close() }),
		}, nil

	case storageOpenSearch:
		var osCfg opensearch.Config
		if err := config.Load(&osCfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := opensearch.New(ctx, osCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		sink := paramlog.NewAsyncSink(opensearch.NewLogSink(client, osCfg), paramlog.AsyncOptions{
			OnError: func(err error) {
				log.Error("parameter log batch failed", logger.Error(err))
			},
		})
		return sink,
			[]httpserver.Check{{Name: "opensearch", Fn: opensearch.Healthcheck(client)}},
			[]httpserver.Option{httpserver.WithCloser("paramlog", sink.Close)},
			nil

	case storageRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		sink := paramlog.NewAsyncSink(redis.NewLogSink(client, redisCfg), paramlog.AsyncOptions{
			OnError: func(err error) {
				log.Error("parameter log batch failed", logger.Error(err))
			},
		})
		return sink,
			[]httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			[]httpserver.Option{
				httpserver.WithCloser("redis", func(context.Context) error { return client.Close() }),
				httpserver.WithCloser("paramlog", sink.Close),
			},
			nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", errUnknownStorage, cfg.ParamLogStorage)
	}
}
