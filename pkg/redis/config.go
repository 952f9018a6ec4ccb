package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database, e.g. "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between connection attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout bounds all connection attempts together.

	// KeyPrefix is prepended to the log destination to form the list key.
	KeyPrefix string `env:"REDIS_LOG_KEY_PREFIX" envDefault:"formrequest:"`
	// MaxLen caps the list length after each push. Zero keeps every entry.
	MaxLen int64 `env:"REDIS_LOG_MAX_LEN" envDefault:"10000"`
}
