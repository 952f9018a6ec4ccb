package opensearch

import "time"

// Config holds OpenSearch connection parameters and the parameter log index
// naming.
type Config struct {
	Addresses    []string `env:"OPENSEARCH_ADDRESSES,required"`
	Username     string   `env:"OPENSEARCH_USERNAME"`
	Password     string   `env:"OPENSEARCH_PASSWORD"`
	MaxRetries   int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
	// RetryBackoff grows linearly per attempt; zero retries immediately.
	RetryBackoff time.Duration `env:"OPENSEARCH_RETRY_BACKOFF" envDefault:"0s"`
	// CompressBody gzips bulk requests.
	CompressBody bool `env:"OPENSEARCH_COMPRESS_BODY" envDefault:"false"`

	// IndexPrefix is prepended to the log destination to form the index name.
	IndexPrefix string `env:"OPENSEARCH_INDEX_PREFIX" envDefault:"formrequest-"`
	// DailyIndex appends the entry date (YYYY.MM.DD) to the index name.
	DailyIndex bool `env:"OPENSEARCH_DAILY_INDEX" envDefault:"true"`
}
