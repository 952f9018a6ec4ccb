package main

import (
	"log/slog"

	"github.com/dmitrymomot/formrequest/pkg/logger"
)

// Parameter log storages selectable with PARAMLOG_STORAGE.
const (
	storageLog        = "log"
	storageFile       = "file"
	storageOpenSearch = "opensearch"
	storageRedis      = "redis"
)

// Lookup backends for exists and unique rules, selectable with TABLE_STORAGE.
const (
	tablesMemory = "memory"
	tablesPG     = "pg"
	tablesMongo  = "mongo"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`

	// ParamLogStorage is one of log, file, opensearch or redis.
	ParamLogStorage string `env:"PARAMLOG_STORAGE" envDefault:"log"`
	ParamLogFile    string `env:"PARAMLOG_FILE" envDefault:"request.log"`

	// TableStorage is one of memory, pg (PG_* variables) or mongo
	// (MONGODB_* variables).
	TableStorage string `env:"TABLE_STORAGE" envDefault:"memory"`

	// TranslationsPath points at a YAML or JSON catalog; empty uses the
	// built-in English messages.
	TranslationsPath string `env:"TRANSLATIONS_PATH"`
}
